package ports

import (
	"context"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

type OrderService interface {
	// Create places an order for the authenticated user. When an idempotency
	// key is supplied and already seen, the previously created order is
	// returned without a second write.
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, bool, error)
	List(ctx context.Context) ([]domain.Order, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	Deactivate(ctx context.Context, id string) error
}

type CreateOrderInput struct {
	UserID         string // always from the bearer token
	Name           string
	Email          string
	Phone          string
	Address        string
	ProductIDs     []string
	TotalPrice     float64
	IdempotencyKey string
}

// OrderReplayStore remembers which idempotency keys already produced an order.
type OrderReplayStore interface {
	Lookup(ctx context.Context, key string) (orderID string, found bool, err error)
	Remember(ctx context.Context, key, orderID string) error
}
