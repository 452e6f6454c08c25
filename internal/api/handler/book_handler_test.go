package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

func TestBookHandler_Create_Success(t *testing.T) {
	stub := &stubBookService{
		createFn: func(ctx context.Context, input ports.CreateBookInput) (*ports.BookWithCategory, error) {
			if input.Title != "Dune" || input.CategoryID != "cat1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.BookWithCategory{
				Book:     domain.Book{ID: "b1", Title: input.Title, CategoryID: input.CategoryID},
				Category: &domain.Category{ID: "cat1", Name: "Fiction"},
			}, nil
		},
	}
	h := NewBookHandler(stub)

	body := `{"title":"Dune","description":"sand","category":"cat1","oldPrice":20,"newPrice":15,"coverImage":"data:image/png;base64,xxx"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/books", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	book, ok := resp["book"].(map[string]any)
	if !ok {
		t.Fatalf("expected book in response")
	}
	detail, ok := book["categoryDetail"].(map[string]any)
	if !ok || detail["name"] != "Fiction" {
		t.Fatalf("expected resolved category, got %+v", book)
	}
}

func TestBookHandler_Create_SalePriceNotBelowList(t *testing.T) {
	stub := &stubBookService{
		createFn: func(ctx context.Context, input ports.CreateBookInput) (*ports.BookWithCategory, error) {
			t.Fatalf("service must not be called on invalid input")
			return nil, nil
		},
	}
	h := NewBookHandler(stub)

	body := `{"title":"Dune","description":"sand","category":"cat1","oldPrice":15,"newPrice":20,"coverImage":"data:image/png;base64,xxx"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/books", body)

	err := h.Create(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBookHandler_Get_NotFound(t *testing.T) {
	stub := &stubBookService{
		getFn: func(ctx context.Context, id string) (*ports.BookWithCategory, error) {
			return nil, domain.ErrBookNotFound
		},
	}
	h := NewBookHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/api/books/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}

func TestBookHandler_Update_PartialBody(t *testing.T) {
	stub := &stubBookService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateBookInput) (*ports.BookWithCategory, error) {
			if id != "b1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if input.NewPrice == nil || *input.NewPrice != 12 {
				t.Fatalf("expected newPrice=12, got %+v", input.NewPrice)
			}
			if input.OldPrice != nil || input.Title != "" {
				t.Fatalf("omitted fields must stay unset: %+v", input)
			}
			return &ports.BookWithCategory{Book: domain.Book{ID: "b1", NewPrice: 12}}, nil
		},
	}
	h := NewBookHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/books/b1", `{"newPrice":12}`)
	c.SetParamNames("id")
	c.SetParamValues("b1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBookHandler_Delete(t *testing.T) {
	var gotID string
	stub := &stubBookService{
		deactivateFn: func(ctx context.Context, id string) error {
			gotID = id
			return nil
		},
	}
	h := NewBookHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/books/b1", "")
	c.SetParamNames("id")
	c.SetParamValues("b1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotID != "b1" {
		t.Fatalf("expected deactivate b1, got %q", gotID)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
