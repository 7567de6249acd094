package services

import "errors"

// Common errors
var (
	ErrTodoNotFound  = errors.New("todo not found")
	ErrTitleRequired = errors.New("title is required")
	ErrInvalidInput  = errors.New("invalid input")
	ErrSendFailed    = errors.New("email send failed")
)
