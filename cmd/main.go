package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"

	"comefundme/internal/adapter/events"
	httpadapter "comefundme/internal/adapter/http"
	"comefundme/internal/adapter/leveldb"
	"comefundme/internal/adapter/memory"
	"comefundme/internal/adapter/postgres"
	"comefundme/internal/adapter/usecase"
	"comefundme/internal/config"
	"comefundme/internal/config/configs"
	"comefundme/internal/core/port"
	"comefundme/internal/db"
)

// main is the entry point of the comefundme ledger. It loads configuration,
// opens the configured storage backend (running migrations for postgres
// when asked to), wires event publishers and the ledger use case, then
// starts the HTTP server. On receiving a termination signal it gracefully
// shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, closeRepo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage error", slog.String("backend", cfg.Ledger.Backend()), slog.Any("error", err))
		return
	}
	defer closeRepo()

	publisher := events.Multi{events.NewLogPublisher(logger)}
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err = rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis ping failed", slog.Any("error", err))
		}
		publisher = append(publisher, events.NewRedisPublisher(rdb, cfg.Redis.EventsKey, cfg.Redis.Channel))
	}

	svc := usecase.NewLedgerUseCase(repo, publisher, usecase.WithLogger(logger))

	if cfg.Ledger.SeedDemo {
		if err = db.Seed(ctx, svc); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo campaigns seeded")
		}
	}

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:              cfg.HTTP.ListenAddr(),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.String("addr", srv.Addr),
			slog.String("storage", cfg.Ledger.Backend()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case value := <-quit:
		exitCode = 128 + int(value.(syscall.Signal))
	case err = <-serverErr:
		logger.Error("server error", slog.Any("error", err))
	}
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

// openRepository returns the configured ledger store and a function that
// releases it.
func openRepository(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.LedgerRepository, func(), error) {
	switch cfg.Ledger.Backend() {
	case configs.StorageLevelDB:
		repo, err := leveldb.Open(cfg.Ledger.LevelDBPath)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {
			if err := repo.Close(); err != nil {
				logger.Error("leveldb close error", slog.Any("error", err))
			}
		}, nil

	case configs.StoragePostgres:
		// Optionally run migrations if configured. We use the Psql sub-config.
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection: %w", err)
		}
		return postgres.NewLedgerRepository(pool), pool.Close, nil

	case configs.StorageMemory:
		return memory.NewLedgerRepository(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Ledger.Storage)
	}
}
