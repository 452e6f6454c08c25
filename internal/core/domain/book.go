package domain

import (
	"strings"
	"time"
)

const coverImagePrefix = "data:image/"

// Book is a catalog entry. CategoryID references a Category document.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CategoryID  string    `json:"category"`
	OldPrice    float64   `json:"oldPrice"`
	NewPrice    float64   `json:"newPrice"`
	CoverImage  string    `json:"coverImage"`
	Trending    bool      `json:"trending"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidatePrices enforces the catalog pricing invariant: both prices are
// non-negative and the sale price is strictly below the list price.
// NewPrice == OldPrice is rejected.
func (b *Book) ValidatePrices() error {
	if b.OldPrice < 0 || b.NewPrice < 0 {
		return ErrInvalidPrice
	}
	if b.NewPrice >= b.OldPrice {
		return ErrInvalidPrice
	}
	return nil
}

// ValidCoverImage reports whether v is an inline image data URI.
func ValidCoverImage(v string) bool {
	return strings.HasPrefix(v, coverImagePrefix)
}
