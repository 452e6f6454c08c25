package domain

import (
	"errors"
	"strings"
)

// Sentinel errors. The API layer maps each one to a deterministic HTTP status
// in a single place; services and repositories only ever return these (or a
// wrapped unexpected error, which surfaces as 500).
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountDisabled    = errors.New("account disabled")

	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already in use")
	ErrEmailTaken    = errors.New("email already in use")

	ErrBookNotFound   = errors.New("book not found")
	ErrBookTitleTaken = errors.New("book title already in use")
	ErrInvalidPrice   = errors.New("sale price must be non-negative and lower than the list price")
	ErrInvalidCover   = errors.New("cover image must be an inline image data URI")

	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryNameTaken = errors.New("category name already in use")

	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// ValidationError carries field-level messages from request validation.
// It renders as 400 with the individual messages in the "errors" array.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}
