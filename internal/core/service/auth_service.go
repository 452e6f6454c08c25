package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
	"github.com/bookhaven/bookstore-api/internal/core/token"
)

// AuthService implements login, profile self-service and the admin dashboard
// summary.
type AuthService struct {
	users  ports.UserRepository
	books  ports.BookRepository
	orders ports.OrderRepository
	codec  *token.Codec
}

func NewAuthService(users ports.UserRepository, books ports.BookRepository, orders ports.OrderRepository, codec *token.Codec) *AuthService {
	return &AuthService{users: users, books: books, orders: orders, codec: codec}
}

// Login verifies credentials and issues a bearer token. A missing user and a
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", nil, domain.ErrAccountDisabled
	}

	tkn, err := s.codec.Issue(user)
	if err != nil {
		return "", nil, err
	}

	return tkn, user, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// UpdateProfile lets the authenticated user change their own username and/or
// password. Empty fields are left unchanged.
func (s *AuthService) UpdateProfile(ctx context.Context, id string, input ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != "" && input.Username != user.Username {
		existing, err := s.users.FindByUsername(ctx, input.Username)
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, domain.ErrUsernameTaken
		}
		user.Username = input.Username
	}

	if input.Password != "" {
		hash, err := hashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Stats aggregates the admin dashboard totals.
func (s *AuthService) Stats(ctx context.Context) (*ports.AdminStats, error) {
	users, err := s.users.CountByRole(ctx, domain.RoleUser)
	if err != nil {
		return nil, err
	}
	books, err := s.books.Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.orders.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.AdminStats{
		TotalUsers:   users,
		TotalBooks:   books,
		TotalOrders:  orders,
		TotalRevenue: revenue,
	}, nil
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
