package dto

import (
	"dailydo/models"

	"github.com/jellydator/validation"
)

// TodoInput is the body of POST /todos/ and PUT /todos/{id}.
// UserID is only read on create. It is signed so that any integer binds and
// unknown owners are reported as not found.
type TodoInput struct {
	Content     string `json:"content"`
	IsCompleted bool   `json:"is_completed"`
	UserID      *int64 `json:"user_id"`
}

func (i TodoInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Content,
			validation.Required,
			validation.RuneLength(models.TodoContentMinLength, models.TodoContentMaxLength),
		),
	)
}
