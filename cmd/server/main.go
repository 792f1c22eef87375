package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gracepoint/church-admin-api/internal/api"
	"github.com/gracepoint/church-admin-api/internal/core/service"
	"github.com/gracepoint/church-admin-api/internal/infrastructure/config"
	mongoinfra "github.com/gracepoint/church-admin-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/gracepoint/church-admin-api/internal/infrastructure/db/redis"
	"github.com/gracepoint/church-admin-api/internal/infrastructure/queue"
	"github.com/gracepoint/church-admin-api/pkg/logger"
)

// @title        Church Admin API
// @version      1.0
// @description  Content management and donation tracking backend.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Bootstrap logger before config so config failures are structured too.
	log := logger.Init(logger.Options{Level: "info"})

	// A missing JWT_SECRET fails here, before the server can mint or accept
	// a single token.
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}

	logger.Reset()
	log = logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongoinfra.Connect(ctx, mongoinfra.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	auditRepo := mongoinfra.NewAuditRepository(db)
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, dispatcher, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// ensureIndexes creates the indexes backing the uniqueness invariants and
// list filters. Startup aborts if any of them cannot be created.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongoinfra.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}
	if err := mongoinfra.NewPageRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("page indexes: %w", err)
	}
	if err := mongoinfra.NewDonationRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("donation indexes: %w", err)
	}
	if err := mongoinfra.NewGatewayRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("gateway indexes: %w", err)
	}
	return nil
}
