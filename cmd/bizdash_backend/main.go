package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/bizdash/internal/core/services"
	"github.com/SscSPs/bizdash/internal/core/store"
	"github.com/SscSPs/bizdash/internal/handlers"
	"github.com/SscSPs/bizdash/internal/middleware"
	"github.com/SscSPs/bizdash/internal/notify"
	"github.com/SscSPs/bizdash/internal/platform/config"
	"github.com/SscSPs/bizdash/internal/repositories/database/pgsql"
	"github.com/SscSPs/bizdash/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Bizdash Backend API
// @version 1.0
// @description Sales, expenses, stock, partner settlement and payroll for a small food-cart business.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.WithMaxConns(cfg.DBMaxConns))
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	logger.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	hub := notify.NewHub(notify.WithAllowedOrigins(cfg.AllowedOrigins()...), notify.WithHubLogger(logger))
	go hub.Run(ctx)

	notifier := notify.Multi{hub, notify.LogNotifier{Logger: logger}}
	if cfg.RedisURL != "" {
		redisClient, err := notify.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			// Notifications still reach this instance's clients.
			logger.Warn("Redis unavailable, notifications stay local", slog.String("error", err.Error()))
		} else {
			defer redisClient.Close()
			publisher := notify.NewRedisPublisher(redisClient, cfg.NotificationChannel, logger)
			notifier = append(notifier, publisher)
			go func() {
				if err := publisher.Relay(ctx, hub); err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("Notification relay stopped", slog.String("error", err.Error()))
				}
			}()
		}
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	entityStore := store.New(repos, notifier, store.WithLogger(logger))
	go func() {
		// Data routes answer 503 until this completes; a failure leaves the store
		// not ready and can be retried with POST /reload.
		if err := entityStore.Load(ctx); err != nil {
			logger.Error("Initial data load failed", slog.String("error", err.Error()))
		}
	}()

	serviceContainer := services.NewServiceContainer(cfg, repos, entityStore)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, hub)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
	logger.Info("Server exited")
}
