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

	httpadapter "biohub/internal/adapter/http"
	"biohub/internal/adapter/postgres"
	"biohub/internal/adapter/rediscache"
	"biohub/internal/adapter/usecase"
	"biohub/internal/config"
	"biohub/internal/core/port"
	"biohub/internal/db"
)

// main is the entry point of the biohub short-link service. It loads
// configuration, optionally runs database migrations and seeding,
// initializes the store (with an optional Redis cache in front of it), the
// click recorder and the resolver, then starts the HTTP server. On receiving
// a termination signal it shuts down gracefully, flushing buffered clicks.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.App.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	store := postgres.NewStore(pool)

	var entityStore port.EntityStore = store
	var limiter httpadapter.Limiter
	if cfg.Redis.Enabled() {
		client, err := rediscache.NewClient(ctx, cfg.Redis.Addr)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer client.Close()
		entityStore = rediscache.NewStore(store, client, cfg.Redis.CacheTTL, logger)
		limiter = rediscache.NewRateLimiter(client, cfg.Redis.RateLimit, cfg.Redis.RateWindow)
		logger.Info("redis cache enabled", slog.String("addr", cfg.Redis.Addr))
	}

	recorder := usecase.NewAsyncClickRecorder(entityStore, logger, cfg.App.ClickQueueSize, cfg.App.ClickWriteTimeout)
	go recorder.Run(ctx)

	resolver := usecase.NewResolver(entityStore, recorder, logger, cfg.App.BaseURL, cfg.App.LookupTimeout)
	admin := usecase.NewAdminService(store)

	handler := httpadapter.NewHandler(resolver, admin, logger, limiter, pool.Ping)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
