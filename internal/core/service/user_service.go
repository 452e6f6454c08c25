package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

type userService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

// NewUserService returns the admin-facing identity management service.
func NewUserService(repo ports.UserRepository, log zerolog.Logger) ports.UserService {
	return &userService{repo: repo, log: log}
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, &domain.ValidationError{Fields: []string{"role must be one of: user, admin"}}
	}

	username := input.Username
	if username == "" {
		username = input.Email
	}

	// Pre-checks give field-specific conflicts; the unique indexes close the
	// remaining race and the repository maps that to the same errors.
	if existing, err := s.repo.FindByEmail(ctx, input.Email); err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailTaken
	}
	if existing, err := s.repo.FindByUsername(ctx, username); err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Username:     username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		Address:      input.Address,
		Phone:        input.Phone,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user created")
	return created, nil
}

func (s *userService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != "" && input.Username != user.Username {
		existing, err := s.repo.FindByUsername(ctx, input.Username)
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, domain.ErrUsernameTaken
		}
		user.Username = input.Username
	}

	if input.Email != "" && input.Email != user.Email {
		existing, err := s.repo.FindByEmail(ctx, input.Email)
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, domain.ErrEmailTaken
		}
		user.Email = input.Email
	}

	if input.Password != "" {
		hash, err := hashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if input.Role != "" {
		if !domain.ValidRole(input.Role) {
			return nil, &domain.ValidationError{Fields: []string{"role must be one of: user, admin"}}
		}
		user.Role = input.Role
	}

	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Deactivate(ctx context.Context, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	user.IsActive = false
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.log.Info().Str("user_id", id).Msg("user deactivated")
	return nil
}
