package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

type orderService struct {
	orders ports.OrderRepository
	books  ports.BookRepository
	replay ports.OrderReplayStore
	log    zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, books ports.BookRepository, replay ports.OrderReplayStore, log zerolog.Logger) ports.OrderService {
	return &orderService{orders: orders, books: books, replay: replay, log: log}
}

// Create places an order. The boolean result reports an idempotent replay:
// true means the order was created by an earlier request with the same key.
func (s *orderService) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, bool, error) {
	if input.IdempotencyKey != "" {
		orderID, found, err := s.replay.Lookup(ctx, input.IdempotencyKey)
		if err != nil {
			s.log.Warn().Err(err).Msg("idempotency lookup failed, creating anyway")
		} else if found {
			existing, err := s.orders.FindByID(ctx, orderID)
			if err == nil {
				s.log.Info().Str("order_id", orderID).Str("idempotency_key", input.IdempotencyKey).Msg("idempotent replay")
				return existing, true, nil
			}
		}
	}

	if input.TotalPrice < 0 {
		return nil, false, &domain.ValidationError{Fields: []string{"totalPrice must not be negative"}}
	}

	// Every referenced product must exist; a broken reference is a 404.
	for _, productID := range input.ProductIDs {
		if _, err := s.books.FindByID(ctx, productID); err != nil {
			return nil, false, err
		}
	}

	now := time.Now().UTC()
	order := &domain.Order{
		UserID:         input.UserID,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Address:        input.Address,
		ProductIDs:     input.ProductIDs,
		TotalPrice:     input.TotalPrice,
		Status:         domain.OrderPending,
		IdempotencyKey: input.IdempotencyKey,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, false, err
	}

	if input.IdempotencyKey != "" {
		if err := s.replay.Remember(ctx, input.IdempotencyKey, created.ID); err != nil {
			s.log.Warn().Err(err).Str("order_id", created.ID).Msg("failed to record idempotency key")
		}
	}

	s.log.Info().Str("order_id", created.ID).Str("user_id", created.UserID).Msg("order created")
	return created, false, nil
}

func (s *orderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *orderService) ListByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	return s.orders.ListByEmail(ctx, email)
}

func (s *orderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidOrderStatus
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order.Status = status
	order.UpdatedAt = time.Now().UTC()
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) Deactivate(ctx context.Context, id string) error {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return err
	}

	order.IsActive = false
	order.UpdatedAt = time.Now().UTC()
	return s.orders.Update(ctx, order)
}
