package ports

import (
	"context"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

type AuthService interface {
	// Login verifies credentials against the store and returns a signed token
	// plus the authenticated user. Deactivated accounts cannot log in.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	CurrentUser(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*domain.User, error)
	Stats(ctx context.Context) (*AdminStats, error)
}

// UpdateProfileInput carries the self-service profile fields. Empty values
// mean "leave unchanged".
type UpdateProfileInput struct {
	Username string
	Password string
}

// AdminStats is the dashboard summary for administrators.
type AdminStats struct {
	TotalUsers   int64   `json:"totalUsers"`
	TotalBooks   int64   `json:"totalBooks"`
	TotalOrders  int64   `json:"totalOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
}
