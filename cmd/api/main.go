// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Super 3000 catalogue HTTP server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the catalogue source (files, or PostgreSQL after migrations).
//  4. Load the catalogue into an immutable index.
//  5. Connect to Redis for browse sessions, or fall back to memory.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
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

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/super3000/internal/api"
	"github.com/taibuivan/super3000/internal/catalog"
	"github.com/taibuivan/super3000/internal/core/browse"
	"github.com/taibuivan/super3000/internal/core/contact"
	"github.com/taibuivan/super3000/internal/core/products"
	"github.com/taibuivan/super3000/internal/core/reference"
	"github.com/taibuivan/super3000/internal/core/site"
	"github.com/taibuivan/super3000/internal/platform/config"
	"github.com/taibuivan/super3000/internal/platform/constants"
	"github.com/taibuivan/super3000/internal/platform/metrics"
	"github.com/taibuivan/super3000/internal/platform/migration"
	pgstore "github.com/taibuivan/super3000/internal/platform/postgres"
	redisstore "github.com/taibuivan/super3000/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("[Super 3000] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("catalog_source", cfg.CatalogSource),
	)

	// Fail fast on unreachable backends instead of hanging.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Root context for background workers; cancelled on shutdown.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	health := api.HealthDependencies{}

	// ── 3. Catalogue Source ───────────────────────────────────────────────
	var source catalog.Source
	switch cfg.CatalogSource {
	case config.SourcePostgres:
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		}()

		health.CheckDatabase = pingPostgres(pool)
		source = catalog.NewPostgresSource(pool)
	default:
		source = catalog.NewFileSource(cfg.CatalogDir)
	}

	// ── 4. Catalogue Index ────────────────────────────────────────────────
	index, err := catalog.Load(startupCtx, source)
	must(log, err, "load catalogue")

	metrics.SetCatalogSize(index.Len())
	log.Info("catalog_loaded",
		slog.Int("products", index.Len()),
		slog.Int("categories", len(index.Categories())),
		slog.Int("makes", len(index.Makes())),
	)

	health.CheckCatalog = func() error {
		if index.Len() == 0 {
			return errors.New("catalog: no products loaded")
		}
		return nil
	}

	// ── 5. Browse Session Store ───────────────────────────────────────────
	var sessions browse.Repository
	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_error", slog.Any("error", cerr))
			}
		}()

		health.CheckCache = pingRedis(rdb)
		sessions = browse.NewRedisRepository(rdb)
	} else {
		memory := browse.NewMemoryRepository()
		memory.StartSweeper(rootCtx, constants.SessionSweepInterval)
		sessions = memory
		log.Warn("browse_sessions_in_memory", slog.String("reason", "REDIS_URL not set"))
	}

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(health, log)

	contactService := contact.NewService(cfg.WhatsAppNumber, log)
	productService := products.NewService(index, contactService, log)
	browseService := browse.NewService(sessions, productService, cfg.SessionTTL, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Metrics:   metrics.Handler(),
		Reference: reference.NewHandler(reference.NewService(index)),
		Products:  products.NewHandler(productService),
		Browse:    browse.NewHandler(browseService),
		Contact:   contact.NewHandler(contactService),
		Site:      site.NewHandler(site.NewService(index, cfg.SiteURL, cfg.WhatsAppNumber)),
	}

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(rootCtx, cfg, log, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting_down_server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

func pingPostgres(pool *pgxpool.Pool) func() error {
	return func() error { return pgstore.Ping(context.Background(), pool) }
}

func pingRedis(client *goredis.Client) func() error {
	return func() error { return redisstore.Ping(context.Background(), client) }
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
