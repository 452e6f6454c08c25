package domain

import "time"

// Category is a catalog taxonomy entry. Deletion is always soft: IsActive is
// flipped to false and list endpoints stop returning it.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
