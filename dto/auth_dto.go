package dto

import (
	"dailydo/models"

	"github.com/jellydator/validation"
)

// 認証系はクエリパラメータで受け取る
type SignupInput struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (i SignupInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required),
		validation.Field(&i.Password, validation.Required),
	)
}

type LoginInput struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (i LoginInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required),
		validation.Field(&i.Password, validation.Required),
	)
}

type LoginResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}
