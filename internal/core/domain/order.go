package domain

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a known lifecycle state.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order records a purchase. UserID is always the identity that created the
// order, taken from the bearer token, never from the request body.
type Order struct {
	ID             string      `json:"id"`
	UserID         string      `json:"user"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone,omitempty"`
	Address        string      `json:"address"`
	ProductIDs     []string    `json:"productIds"`
	TotalPrice     float64     `json:"totalPrice"`
	Status         OrderStatus `json:"status"`
	IdempotencyKey string      `json:"-"`
	IsActive       bool        `json:"isActive"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
