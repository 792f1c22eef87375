// Command seed bootstraps the initial admin account. Run once against a fresh
// database; it refuses to overwrite an existing account with the same email.
package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
	"golang.org/x/crypto/bcrypt"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
	"github.com/gracepoint/church-admin-api/internal/core/ports"
	mongoinfra "github.com/gracepoint/church-admin-api/internal/infrastructure/db/mongo"
	"github.com/gracepoint/church-admin-api/pkg/logger"
)

type seedConfig struct {
	AdminName     string `env:"SEED_ADMIN_NAME,     default=Administrator"`
	AdminEmail    string `env:"SEED_ADMIN_EMAIL,    required"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD, required"`

	MongoURI string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	MongoDB  string `env:"MONGO_DB,  default=church_admin"`
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log := logger.Init(logger.Options{Level: "info", Pretty: true})

	var cfg seedConfig
	if err := envconfig.Process(ctx, &cfg); err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}

	client, db, err := mongoinfra.Connect(ctx, mongoinfra.Config{
		URI:      cfg.MongoURI,
		Database: cfg.MongoDB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	repo := mongoinfra.NewUserRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	admin, err := seedAdmin(ctx, repo, cfg)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			log.Warn().Str("email", cfg.AdminEmail).Msg("admin account already exists, nothing to do")
			return
		}
		log.Fatal().Err(err).Msg("admin account creation failed")
	}

	log.Info().Str("id", admin.ID).Str("email", admin.Email).Msg("admin account created")
}

// seedAdmin hashes the password and creates the admin account. The email is
// stored lower-cased and trimmed, the same normalization the login path
// applies, so a seeded admin can actually sign in.
func seedAdmin(ctx context.Context, repo ports.UserRepository, cfg seedConfig) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	return repo.Create(ctx, &domain.User{
		Name:         cfg.AdminName,
		Email:        strings.ToLower(strings.TrimSpace(cfg.AdminEmail)),
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}
