package models

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateSlug = errors.New("form with this slug already exists")
	ErrInvalidID     = errors.New("invalid id")
)

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// FieldError is one failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationErrorResponse is returned with 400 when a request body fails validation.
type ValidationErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}
