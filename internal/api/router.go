package api

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sshuster/job-hero-dashboard/internal/api/handler"
	"github.com/sshuster/job-hero-dashboard/internal/api/middleware"
	"github.com/sshuster/job-hero-dashboard/internal/core/domain"
	"github.com/sshuster/job-hero-dashboard/internal/core/service"
	mongodb "github.com/sshuster/job-hero-dashboard/internal/infrastructure/db/mongo"
	redisdb "github.com/sshuster/job-hero-dashboard/internal/infrastructure/db/redis"
)

// Options collects what the router needs beyond its store handles.
type Options struct {
	JWTSecret        string
	Profile          *domain.Profile
	LoginMaxAttempts int64
	LoginWindow      time.Duration
	Logger           zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	listingRepo := mongodb.NewListingRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb, opts.LoginMaxAttempts, opts.LoginWindow)

	authService := service.NewAuthService(userRepo, throttle, opts.JWTSecret, 24*time.Hour, opts.Logger)
	listingService := service.NewListingService(listingRepo, opts.Profile, opts.Logger)

	authHandler := handler.NewAuthHandler(authService)
	listingHandler := handler.NewListingHandler(listingService)

	requireAuth := middleware.Auth(opts.JWTSecret)
	optionalAuth := middleware.OptionalAuth(opts.JWTSecret)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)
	e.GET("/api/auth/me", authHandler.Me, requireAuth)

	// --- Listing routes ---
	e.GET("/api/listings", listingHandler.ListPublic)
	e.GET("/api/listings/user/:user_id", listingHandler.ListByOwner)
	e.GET("/api/listings/stats/:user_id", listingHandler.Stats)
	e.GET("/api/listings/:id", listingHandler.Get, optionalAuth)
	e.POST("/api/listings", listingHandler.Create, requireAuth)
	e.PUT("/api/listings/:id", listingHandler.Update, requireAuth)
	e.DELETE("/api/listings/:id", listingHandler.Delete, requireAuth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
