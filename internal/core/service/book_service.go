package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

type bookService struct {
	books      ports.BookRepository
	categories ports.CategoryRepository
	log        zerolog.Logger
}

func NewBookService(books ports.BookRepository, categories ports.CategoryRepository, log zerolog.Logger) ports.BookService {
	return &bookService{books: books, categories: categories, log: log}
}

func (s *bookService) List(ctx context.Context) ([]ports.BookWithCategory, error) {
	books, err := s.books.List(ctx, true)
	if err != nil {
		return nil, err
	}
	out := make([]ports.BookWithCategory, 0, len(books))
	for i := range books {
		out = append(out, s.withCategory(ctx, books[i]))
	}
	return out, nil
}

func (s *bookService) Get(ctx context.Context, id string) (*ports.BookWithCategory, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	bc := s.withCategory(ctx, *book)
	return &bc, nil
}

func (s *bookService) Create(ctx context.Context, input ports.CreateBookInput) (*ports.BookWithCategory, error) {
	if !domain.ValidCoverImage(input.CoverImage) {
		return nil, domain.ErrInvalidCover
	}

	now := time.Now().UTC()
	book := &domain.Book{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		CategoryID:  input.CategoryID,
		OldPrice:    input.OldPrice,
		NewPrice:    input.NewPrice,
		CoverImage:  input.CoverImage,
		Trending:    input.Trending,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := book.ValidatePrices(); err != nil {
		return nil, err
	}

	// Referential check before the write: a missing category is a 404, not a
	// validation failure.
	category, err := s.categories.FindByID(ctx, book.CategoryID)
	if err != nil {
		return nil, err
	}

	if existing, err := s.books.FindByTitle(ctx, book.Title); err != nil && !errors.Is(err, domain.ErrBookNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrBookTitleTaken
	}

	created, err := s.books.Create(ctx, book)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("book_id", created.ID).Str("title", created.Title).Msg("book created")
	return &ports.BookWithCategory{Book: *created, Category: category}, nil
}

func (s *bookService) Update(ctx context.Context, id string, input ports.UpdateBookInput) (*ports.BookWithCategory, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		title := strings.TrimSpace(input.Title)
		if title != book.Title {
			existing, err := s.books.FindByTitle(ctx, title)
			if err != nil && !errors.Is(err, domain.ErrBookNotFound) {
				return nil, err
			}
			if existing != nil && existing.ID != book.ID {
				return nil, domain.ErrBookTitleTaken
			}
			book.Title = title
		}
	}
	if input.Description != "" {
		book.Description = strings.TrimSpace(input.Description)
	}
	if input.CategoryID != "" {
		if _, err := s.categories.FindByID(ctx, input.CategoryID); err != nil {
			return nil, err
		}
		book.CategoryID = input.CategoryID
	}
	if input.CoverImage != "" {
		if !domain.ValidCoverImage(input.CoverImage) {
			return nil, domain.ErrInvalidCover
		}
		book.CoverImage = input.CoverImage
	}
	if input.OldPrice != nil {
		book.OldPrice = *input.OldPrice
	}
	if input.NewPrice != nil {
		book.NewPrice = *input.NewPrice
	}
	if input.Trending != nil {
		book.Trending = *input.Trending
	}

	// The pricing invariant is checked against the merged document so a
	// partial update cannot sneak past it.
	if err := book.ValidatePrices(); err != nil {
		return nil, err
	}

	book.UpdatedAt = time.Now().UTC()
	if err := s.books.Update(ctx, book); err != nil {
		return nil, err
	}

	bc := s.withCategory(ctx, *book)
	return &bc, nil
}

func (s *bookService) Deactivate(ctx context.Context, id string) error {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		return err
	}

	book.IsActive = false
	book.UpdatedAt = time.Now().UTC()
	return s.books.Update(ctx, book)
}

// withCategory resolves the category reference for read responses. A broken
// reference is logged and the book is returned without the embedded category
// rather than failing the whole read.
func (s *bookService) withCategory(ctx context.Context, book domain.Book) ports.BookWithCategory {
	category, err := s.categories.FindByID(ctx, book.CategoryID)
	if err != nil {
		s.log.Warn().Err(err).Str("book_id", book.ID).Str("category_id", book.CategoryID).Msg("category lookup failed")
		return ports.BookWithCategory{Book: book}
	}
	return ports.BookWithCategory{Book: book, Category: category}
}
