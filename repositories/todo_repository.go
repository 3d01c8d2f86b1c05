package repositories

import (
	"context"
	"dailydo/infra"
	"dailydo/models"

	"gorm.io/gorm"
)

type ITodoRepository interface {
	FindAll(ctx context.Context) (*[]models.Todo, error)
	FindById(ctx context.Context, todoID uint) (*models.Todo, error)
	Create(ctx context.Context, newTodo models.Todo) (*models.Todo, error)
	Update(ctx context.Context, todo models.Todo) (*models.Todo, error)
	Delete(ctx context.Context, todoID uint) error
}

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) ITodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) FindAll(ctx context.Context) (*[]models.Todo, error) {
	var todos []models.Todo
	result := infra.DBFromContext(ctx, r.db).Order("id").Find(&todos)
	if result.Error != nil {
		return nil, result.Error
	}
	return &todos, nil
}

func (r *TodoRepository) FindById(ctx context.Context, todoID uint) (*models.Todo, error) {
	var todo models.Todo
	result := infra.DBFromContext(ctx, r.db).First(&todo, "id = ?", todoID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &todo, nil
}

func (r *TodoRepository) Create(ctx context.Context, newTodo models.Todo) (*models.Todo, error) {
	result := infra.DBFromContext(ctx, r.db).Create(&newTodo)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newTodo, nil
}

// Update writes content and is_completed only; user_id is never touched.
func (r *TodoRepository) Update(ctx context.Context, todo models.Todo) (*models.Todo, error) {
	result := infra.DBFromContext(ctx, r.db).
		Model(&models.Todo{}).
		Where("id = ?", todo.ID).
		Updates(map[string]interface{}{
			"content":      todo.Content,
			"is_completed": todo.IsCompleted,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.FindById(ctx, todo.ID)
}

func (r *TodoRepository) Delete(ctx context.Context, todoID uint) error {
	result := infra.DBFromContext(ctx, r.db).Delete(&models.Todo{}, "id = ?", todoID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
