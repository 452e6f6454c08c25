package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

func TestOrderHandler_Create_Success(t *testing.T) {
	stub := &stubOrderService{
		createFn: func(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, bool, error) {
			if input.UserID != "u1" {
				t.Fatalf("user id must come from claims, got %q", input.UserID)
			}
			if input.IdempotencyKey != "key-1" {
				t.Fatalf("expected idempotency key from header, got %q", input.IdempotencyKey)
			}
			return &domain.Order{ID: "o1", UserID: input.UserID, Status: domain.OrderPending}, false, nil
		},
	}
	h := NewOrderHandler(stub)

	body := `{"name":"Alice","email":"a@example.com","address":"42 Main St","productIds":["b1"],"totalPrice":15}`
	c, rec := newTestContext(t, http.MethodPost, "/api/orders", body)
	c.Request().Header.Set("Idempotency-Key", "key-1")
	withClaims(c, "u1", "alice", domain.RoleUser)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestOrderHandler_Create_Replayed(t *testing.T) {
	stub := &stubOrderService{
		createFn: func(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, bool, error) {
			return &domain.Order{ID: "o1", Status: domain.OrderPending}, true, nil
		},
	}
	h := NewOrderHandler(stub)

	body := `{"name":"Alice","email":"a@example.com","address":"42 Main St","productIds":["b1"],"totalPrice":15}`
	c, rec := newTestContext(t, http.MethodPost, "/api/orders", body)
	withClaims(c, "u1", "alice", domain.RoleUser)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	// a replay returns the original order, not a second 201
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on replay, got %d", rec.Code)
	}
}

func TestOrderHandler_Create_StructuredAddress(t *testing.T) {
	stub := &stubOrderService{
		createFn: func(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, bool, error) {
			if input.Address != "Springfield, IL, USA, 62704" {
				t.Fatalf("unexpected flattened address: %q", input.Address)
			}
			return &domain.Order{ID: "o1"}, false, nil
		},
	}
	h := NewOrderHandler(stub)

	body := `{"name":"Alice","email":"a@example.com","address":{"city":"Springfield","state":"IL","country":"USA","zipcode":"62704"},"productIds":["b1"],"totalPrice":15}`
	c, _ := newTestContext(t, http.MethodPost, "/api/orders", body)
	withClaims(c, "u1", "alice", domain.RoleUser)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestOrderHandler_Create_NoClaims(t *testing.T) {
	h := NewOrderHandler(&stubOrderService{
		createFn: func(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, bool, error) {
			t.Fatalf("service must not be called without claims")
			return nil, false, nil
		},
	})

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	stub := &stubOrderService{
		updateStatusFn: func(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
			if id != "o1" || status != domain.OrderShipped {
				t.Fatalf("unexpected args: %s %s", id, status)
			}
			return &domain.Order{ID: "o1", Status: status}, nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/orders/o1", `{"status":"shipped"}`)
	c.SetParamNames("id")
	c.SetParamValues("o1")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOrderHandler_ListByEmail(t *testing.T) {
	stub := &stubOrderService{
		listByEmailFn: func(ctx context.Context, email string) ([]domain.Order, error) {
			if email != "a@example.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			return []domain.Order{{ID: "o1", Email: email}}, nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/orders/email/a@example.com", "")
	c.SetParamNames("email")
	c.SetParamValues("a@example.com")

	if err := h.ListByEmail(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestFlattenAddress(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"plain string", `"42 Main St"`, "42 Main St"},
		{"full object", `{"city":"Springfield","state":"IL","country":"USA","zipcode":"62704"}`, "Springfield, IL, USA, 62704"},
		{"partial object", `{"city":"Springfield","country":"USA"}`, "Springfield, USA"},
		{"empty", ``, ""},
		{"garbage", `12345`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := flattenAddress([]byte(tc.raw))
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
