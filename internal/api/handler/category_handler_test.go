package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

func TestCategoryHandler_Create_Success(t *testing.T) {
	stub := &stubCategoryService{
		createFn: func(ctx context.Context, name, description string) (*domain.Category, error) {
			if name != "Fiction" {
				t.Fatalf("unexpected name: %s", name)
			}
			return &domain.Category{ID: "cat1", Name: name, Description: description, IsActive: true}, nil
		},
	}
	h := NewCategoryHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/categories", `{"name":"Fiction","description":"novels"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCategoryHandler_Create_DuplicateName(t *testing.T) {
	stub := &stubCategoryService{
		createFn: func(ctx context.Context, name, description string) (*domain.Category, error) {
			return nil, domain.ErrCategoryNameTaken
		},
	}
	h := NewCategoryHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/categories", `{"name":"Fiction"}`)
	if err := h.Create(c); !errors.Is(err, domain.ErrCategoryNameTaken) {
		t.Fatalf("expected ErrCategoryNameTaken, got %v", err)
	}
}

func TestCategoryHandler_Update(t *testing.T) {
	stub := &stubCategoryService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateCategoryInput) (*domain.Category, error) {
			if id != "cat1" || input.Name != "Sci-Fi" {
				t.Fatalf("unexpected args: %s %+v", id, input)
			}
			return &domain.Category{ID: id, Name: input.Name, IsActive: true}, nil
		},
	}
	h := NewCategoryHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/api/categories/cat1", `{"name":"Sci-Fi"}`)
	c.SetParamNames("id")
	c.SetParamValues("cat1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCategoryHandler_Delete_NotFound(t *testing.T) {
	stub := &stubCategoryService{
		deactivateFn: func(ctx context.Context, id string) error {
			return domain.ErrCategoryNotFound
		},
	}
	h := NewCategoryHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/api/categories/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Delete(c); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
