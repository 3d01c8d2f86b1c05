package repositories

import (
	"context"
	"dailydo/infra"
	"dailydo/models"

	"gorm.io/gorm"
)

type IAuthRepository interface {
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	FindUser(ctx context.Context, email string) (*models.User, error)
	FindUserById(ctx context.Context, userID uint) (*models.User, error)
}

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) IAuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	result := infra.DBFromContext(ctx, r.db).Create(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

// FindUser returns gorm.ErrRecordNotFound when no user has the email.
func (r *AuthRepository) FindUser(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	result := infra.DBFromContext(ctx, r.db).First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *AuthRepository) FindUserById(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	result := infra.DBFromContext(ctx, r.db).First(&user, "id = ?", userID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}
