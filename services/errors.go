package services

import "errors"

var (
	ErrMissingCredentials = errors.New("missing email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidTodo        = errors.New("invalid todo")
	ErrTodoNotFound       = errors.New("todo not found")
)
