package services

import (
	"context"
	"dailydo/dto"
	"dailydo/models"
	"dailydo/repositories"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type ITodoService interface {
	FindAll(ctx context.Context) (*[]models.Todo, error)
	FindById(ctx context.Context, todoID uint) (*models.Todo, error)
	Create(ctx context.Context, input dto.TodoInput) (*models.Todo, error)
	Update(ctx context.Context, todoID uint, input dto.TodoInput) (*models.Todo, error)
	Delete(ctx context.Context, todoID uint) error
}

// TodoService does not scope todos by owner: any caller may read or change
// any todo by id.
type TodoService struct {
	repository     repositories.ITodoRepository
	authRepository repositories.IAuthRepository
}

func NewTodoService(repository repositories.ITodoRepository, authRepository repositories.IAuthRepository) ITodoService {
	return &TodoService{
		repository:     repository,
		authRepository: authRepository,
	}
}

// FindAll treats an empty table as ErrTodoNotFound.
func (s *TodoService) FindAll(ctx context.Context) (*[]models.Todo, error) {
	todos, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find all todos: %w", err)
	}
	if len(*todos) == 0 {
		return nil, ErrTodoNotFound
	}
	return todos, nil
}

func (s *TodoService) FindById(ctx context.Context, todoID uint) (*models.Todo, error) {
	todo, err := s.repository.FindById(ctx, todoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("find todo %d: %w", todoID, err)
	}
	return todo, nil
}

func (s *TodoService) Create(ctx context.Context, input dto.TodoInput) (*models.Todo, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTodo, err)
	}
	if input.UserID == nil || *input.UserID <= 0 {
		return nil, ErrUserNotFound
	}

	user, err := s.authRepository.FindUserById(ctx, uint(*input.UserID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %d: %w", *input.UserID, err)
	}

	newTodo := models.Todo{
		Content:     input.Content,
		IsCompleted: input.IsCompleted,
		UserID:      &user.ID,
	}
	todo, err := s.repository.Create(ctx, newTodo)
	if err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	return todo, nil
}

// Update overwrites content and is_completed. input.UserID is ignored.
func (s *TodoService) Update(ctx context.Context, todoID uint, input dto.TodoInput) (*models.Todo, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTodo, err)
	}

	targetTodo, err := s.FindById(ctx, todoID)
	if err != nil {
		return nil, err
	}

	targetTodo.Content = input.Content
	targetTodo.IsCompleted = input.IsCompleted

	updated, err := s.repository.Update(ctx, *targetTodo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("update todo %d: %w", todoID, err)
	}
	return updated, nil
}

func (s *TodoService) Delete(ctx context.Context, todoID uint) error {
	err := s.repository.Delete(ctx, todoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTodoNotFound
		}
		return fmt.Errorf("delete todo %d: %w", todoID, err)
	}
	return nil
}
