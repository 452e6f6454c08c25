package ports

import (
	"context"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, name, description string) (*domain.Category, error)
	Update(ctx context.Context, id string, input UpdateCategoryInput) (*domain.Category, error)
	Deactivate(ctx context.Context, id string) error
}

type UpdateCategoryInput struct {
	Name        string
	Description string
	IsActive    *bool
}
