package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/bookstore-api/internal/api/middleware"
	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

// newTestContext builds an echo.Context with a JSON body and the validator
// installed, mirroring how requests reach handlers through the router.
func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// withClaims injects the context values the Auth middleware would set.
func withClaims(c echo.Context, userID, username, role string) {
	c.Set(middleware.CtxUserID, userID)
	c.Set(middleware.CtxUsername, username)
	c.Set(middleware.CtxRole, role)
}

// --- Service stubs ---

type stubAuthService struct {
	loginFn         func(ctx context.Context, username, password string) (string, *domain.User, error)
	currentUserFn   func(ctx context.Context, id string) (*domain.User, error)
	updateProfileFn func(ctx context.Context, id string, input ports.UpdateProfileInput) (*domain.User, error)
	statsFn         func(ctx context.Context) (*ports.AdminStats, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) CurrentUser(ctx context.Context, id string) (*domain.User, error) {
	return s.currentUserFn(ctx, id)
}

func (s *stubAuthService) UpdateProfile(ctx context.Context, id string, input ports.UpdateProfileInput) (*domain.User, error) {
	return s.updateProfileFn(ctx, id, input)
}

func (s *stubAuthService) Stats(ctx context.Context) (*ports.AdminStats, error) {
	return s.statsFn(ctx)
}

type stubUserService struct {
	listFn       func(ctx context.Context) ([]domain.User, error)
	getFn        func(ctx context.Context, id string) (*domain.User, error)
	createFn     func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	updateFn     func(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error)
	deactivateFn func(ctx context.Context, id string) error
}

func (s *stubUserService) List(ctx context.Context) ([]domain.User, error) { return s.listFn(ctx) }

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubUserService) Deactivate(ctx context.Context, id string) error {
	return s.deactivateFn(ctx, id)
}

type stubBookService struct {
	listFn       func(ctx context.Context) ([]ports.BookWithCategory, error)
	getFn        func(ctx context.Context, id string) (*ports.BookWithCategory, error)
	createFn     func(ctx context.Context, input ports.CreateBookInput) (*ports.BookWithCategory, error)
	updateFn     func(ctx context.Context, id string, input ports.UpdateBookInput) (*ports.BookWithCategory, error)
	deactivateFn func(ctx context.Context, id string) error
}

func (s *stubBookService) List(ctx context.Context) ([]ports.BookWithCategory, error) {
	return s.listFn(ctx)
}

func (s *stubBookService) Get(ctx context.Context, id string) (*ports.BookWithCategory, error) {
	return s.getFn(ctx, id)
}

func (s *stubBookService) Create(ctx context.Context, input ports.CreateBookInput) (*ports.BookWithCategory, error) {
	return s.createFn(ctx, input)
}

func (s *stubBookService) Update(ctx context.Context, id string, input ports.UpdateBookInput) (*ports.BookWithCategory, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubBookService) Deactivate(ctx context.Context, id string) error {
	return s.deactivateFn(ctx, id)
}

type stubCategoryService struct {
	listFn       func(ctx context.Context) ([]domain.Category, error)
	getFn        func(ctx context.Context, id string) (*domain.Category, error)
	createFn     func(ctx context.Context, name, description string) (*domain.Category, error)
	updateFn     func(ctx context.Context, id string, input ports.UpdateCategoryInput) (*domain.Category, error)
	deactivateFn func(ctx context.Context, id string) error
}

func (s *stubCategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.listFn(ctx)
}

func (s *stubCategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.getFn(ctx, id)
}

func (s *stubCategoryService) Create(ctx context.Context, name, description string) (*domain.Category, error) {
	return s.createFn(ctx, name, description)
}

func (s *stubCategoryService) Update(ctx context.Context, id string, input ports.UpdateCategoryInput) (*domain.Category, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubCategoryService) Deactivate(ctx context.Context, id string) error {
	return s.deactivateFn(ctx, id)
}

type stubOrderService struct {
	createFn       func(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, bool, error)
	listFn         func(ctx context.Context) ([]domain.Order, error)
	listByEmailFn  func(ctx context.Context, email string) ([]domain.Order, error)
	updateStatusFn func(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	deactivateFn   func(ctx context.Context, id string) error
}

func (s *stubOrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, bool, error) {
	return s.createFn(ctx, input)
}

func (s *stubOrderService) List(ctx context.Context) ([]domain.Order, error) { return s.listFn(ctx) }

func (s *stubOrderService) ListByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	return s.listByEmailFn(ctx, email)
}

func (s *stubOrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	return s.updateStatusFn(ctx, id, status)
}

func (s *stubOrderService) Deactivate(ctx context.Context, id string) error {
	return s.deactivateFn(ctx, id)
}
