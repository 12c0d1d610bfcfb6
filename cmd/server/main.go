package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sshuster/job-hero-dashboard/internal/api"
	"github.com/sshuster/job-hero-dashboard/internal/core/domain"
	"github.com/sshuster/job-hero-dashboard/internal/core/service"
	"github.com/sshuster/job-hero-dashboard/internal/infrastructure/db/mongo"
	"github.com/sshuster/job-hero-dashboard/internal/infrastructure/db/redis"
	"github.com/sshuster/job-hero-dashboard/internal/pkg/config"
	"github.com/sshuster/job-hero-dashboard/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	profile, err := domain.ProfileByName(cfg.Variant)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid VARIANT")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongo.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	// Index bootstrap and idempotent admin seeding run once per boot,
	// before the server accepts traffic.
	userRepo := mongo.NewUserRepository(db)
	listingRepo := mongo.NewListingRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := listingRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create listing indexes")
	}

	seeder := service.NewAuthService(userRepo, nil, cfg.JWTSecret, 0, log)
	if err := seeder.EnsureAdmin(ctx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin account")
	}

	e := api.NewRouter(db, rdb, api.Options{
		JWTSecret:        cfg.JWTSecret,
		Profile:          profile,
		LoginMaxAttempts: cfg.Login.MaxAttempts,
		LoginWindow:      cfg.Login.Window,
		Logger:           log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("variant", profile.Name).
		Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
