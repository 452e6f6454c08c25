// Command createadmin provisions the first administrator account. It is meant
// to run once against a fresh database; rerunning it is a no-op when the
// account already exists.
package main

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
	"github.com/bookhaven/bookstore-api/internal/core/service"
	"github.com/bookhaven/bookstore-api/internal/infrastructure/config"
	bookmongo "github.com/bookhaven/bookstore-api/internal/infrastructure/db/mongo"
	"github.com/bookhaven/bookstore-api/pkg/logger"
)

// seedConfig deliberately avoids the full server config: the tool only needs
// the database plus the admin credentials, and those credentials have no
// defaults — a seeded admin with a well-known password is worse than no
// admin at all.
type seedConfig struct {
	LogLevel string `env:"LOG_LEVEL, default=info"`
	Mongo    config.MongoConfig

	Username string `env:"ADMIN_USERNAME, required"`
	Email    string `env:"ADMIN_EMAIL,    required"`
	Password string `env:"ADMIN_PASSWORD, required"`
	Name     string `env:"ADMIN_NAME,     default=Administrator"`
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var admin seedConfig
	if err := envconfig.Process(ctx, &admin); err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{Level: admin.LogLevel, Pretty: true})

	client, db, err := bookmongo.Connect(ctx, bookmongo.Config{
		URI:      admin.Mongo.URI,
		Database: admin.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongodb")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := bookmongo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	users := bookmongo.NewUserRepository(db)
	if existing, err := users.FindByUsername(ctx, admin.Username); err == nil && existing != nil {
		log.Info().Str("username", admin.Username).Msg("admin account already exists, nothing to do")
		return
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		log.Fatal().Err(err).Msg("lookup admin account")
	}

	svc := service.NewUserService(users, log)
	created, err := svc.Create(ctx, ports.CreateUserInput{
		Name:     admin.Name,
		Username: admin.Username,
		Email:    admin.Email,
		Password: admin.Password,
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("create admin account")
	}

	log.Info().Str("id", created.ID).Str("username", created.Username).Msg("admin account created")
}
