// Package main is the entry point for the Expense Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/config"
	infracache "github.com/expense-tracker/backend/internal/infra/cache"
	"github.com/expense-tracker/backend/internal/infra/db"
	"github.com/expense-tracker/backend/internal/infra/dependency"
	"github.com/expense-tracker/backend/internal/integration/events"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Expense Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	if err := database.SeedCatalog(context.Background()); err != nil {
		slog.Error("Failed to seed catalog", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Optional trend cache
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = infracache.NewRedisClient(&cfg.Redis)
		if err != nil {
			slog.Warn("Redis unavailable, running without trend cache", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	// Optional event publisher
	var publisher *events.Publisher
	if cfg.AMQP.Enabled {
		publisher, err = events.NewPublisher(cfg.AMQP.URL, cfg.AMQP.ExchangeName, cfg.AMQP.QueueName)
		if err != nil {
			slog.Warn("AMQP unavailable, running without expense events", "error", err)
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	injector, err := dependency.NewInjector(cfg, database.DB(), dependency.Options{
		Redis:       redisClient,
		Publisher:   publisher,
		HealthCheck: database.HealthCheck,
	})
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Background jobs
	jobCtx, stopJobs := context.WithCancel(context.Background())
	defer stopJobs()

	if injector.Scheduler != nil {
		go injector.Scheduler.Start(jobCtx)
	}
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-ticker.C:
				injector.ExportRateLimiter.Cleanup()
			}
		}
	}()

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopJobs()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
