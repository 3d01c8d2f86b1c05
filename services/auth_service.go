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

type IAuthService interface {
	Signup(ctx context.Context, input dto.SignupInput) error
	Login(ctx context.Context, input dto.LoginInput) (*models.User, error)
}

type AuthService struct {
	repository repositories.IAuthRepository
}

func NewAuthService(repository repositories.IAuthRepository) IAuthService {
	return &AuthService{repository: repository}
}

// Signup checks for an existing email before inserting. Nothing backs the
// check at the database level, so two concurrent signups can both succeed.
func (s *AuthService) Signup(ctx context.Context, input dto.SignupInput) error {
	if err := input.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrMissingCredentials, err)
	}

	_, err := s.repository.FindUser(ctx, input.Email)
	if err == nil {
		return ErrEmailRegistered
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("find user by email: %w", err)
	}

	_, err = s.repository.CreateUser(ctx, models.User{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Login compares the stored password as plaintext and returns the full user
// record, password included.
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*models.User, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingCredentials, err)
	}

	user, err := s.repository.FindUser(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	if user.Password != input.Password {
		return nil, ErrIncorrectPassword
	}
	return user, nil
}
