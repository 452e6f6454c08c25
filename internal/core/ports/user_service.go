package ports

import (
	"context"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	// Deactivate soft-deletes: the record stays in the store with
	// IsActive=false and the account can no longer log in.
	Deactivate(ctx context.Context, id string) error
}

type CreateUserInput struct {
	Name     string
	Username string // defaults to Email when empty
	Email    string
	Password string
	Role     string // defaults to "user" when empty
	Address  string
	Phone    string
}

// UpdateUserInput carries admin-editable fields. Empty strings mean "leave
// unchanged"; IsActive is a pointer so false can be set explicitly.
type UpdateUserInput struct {
	Username string
	Email    string
	Password string
	Role     string
	IsActive *bool
}
