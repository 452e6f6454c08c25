package ports

import (
	"context"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

// BookWithCategory pairs a book with its resolved category for read responses.
type BookWithCategory struct {
	domain.Book
	Category *domain.Category `json:"categoryDetail,omitempty"`
}

type BookService interface {
	List(ctx context.Context) ([]BookWithCategory, error)
	Get(ctx context.Context, id string) (*BookWithCategory, error)
	Create(ctx context.Context, input CreateBookInput) (*BookWithCategory, error)
	Update(ctx context.Context, id string, input UpdateBookInput) (*BookWithCategory, error)
	Deactivate(ctx context.Context, id string) error
}

type CreateBookInput struct {
	Title       string
	Description string
	CategoryID  string
	OldPrice    float64
	NewPrice    float64
	CoverImage  string
	Trending    bool
}

// UpdateBookInput carries partial updates. Nil pointers and empty strings mean
// "leave unchanged"; price fields are re-validated against the merged result.
type UpdateBookInput struct {
	Title       string
	Description string
	CategoryID  string
	OldPrice    *float64
	NewPrice    *float64
	CoverImage  string
	Trending    *bool
}
