package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"

	"github.com/lumyn/showdown/internal/config"
	"github.com/lumyn/showdown/internal/history"
	"github.com/lumyn/showdown/internal/metrics"
	"github.com/lumyn/showdown/internal/middleware"
	"github.com/lumyn/showdown/internal/pkg/message"
	"github.com/lumyn/showdown/internal/platform/db"
	"github.com/lumyn/showdown/internal/platform/hash"
	"github.com/lumyn/showdown/internal/platform/jwt"
	"github.com/lumyn/showdown/internal/platform/router"
	"github.com/lumyn/showdown/internal/platform/validation"
)

func Run(ctx context.Context) error {
	slog.Info("Initializing...")

	if os.Getenv("ENV") != "production" {
		if err := env.Load(".env"); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}

	cfg, err := config.Load("config.json")
	if err != nil {
		return err
	}

	const envKey = "KEY"
	securityKey, ok := os.LookupEnv(envKey)
	if !ok {
		return fmt.Errorf(message.EnvErrFmt, envKey)
	}

	archiveRepo, closeArchive, err := openArchive(ctx, cfg.History)
	if err != nil {
		return err
	}
	defer closeArchive()

	mtr := metrics.New()
	providers := &Providers{
		Signer:    jwt.NewGolangJWTSigner(cfg.JWT, securityKey),
		Hasher:    hash.NewArgon2Hasher(cfg.Argon2, securityKey),
		Validator: validation.NewPlaygroundValidator(),
		Router:    router.NewGoexpressRouter(),
		Metrics:   mtr,
		Archive:   history.NewService(archiveRepo),
	}

	middlewares := []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest(mtr),
		middleware.CORS,
		middleware.CheckContentType,
	}

	application := New(cfg, providers, middlewares)
	if err := application.Start(ctx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return application.Shutdown()
}

// openArchive picks the match archive backend. Live room state always stays
// in memory; this only decides where resolved rounds go.
func openArchive(ctx context.Context, cfg *config.History) (history.Repository, func(), error) {
	noop := func() {}

	switch cfg.Driver {
	case "", "memory":
		slog.Info("Using in-memory match archive.")
		return history.NewMemoryRepository(), noop, nil

	case "sqlite":
		slog.Info("Using sqlite match archive.", "path", cfg.Path)
		repo, err := history.NewSQLiteRepository(ctx, cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite archive: %w", err)
		}
		return repo, func() {
			if err := repo.Close(); err != nil {
				slog.Error("Failed to close sqlite archive.", "reason", err)
			}
		}, nil

	case "postgres":
		conn, err := db.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres archive: %w", err)
		}
		repo, err := history.NewPostgresRepository(ctx, conn)
		if err != nil {
			closeErr := conn.Close()
			if closeErr != nil {
				slog.Error("Failed to close database.", "reason", closeErr)
			}
			return nil, nil, fmt.Errorf("open postgres archive: %w", err)
		}
		return repo, func() {
			if err := conn.Close(); err != nil {
				slog.Error("Failed to close database.", "reason", err)
			}
		}, nil

	default:
		return nil, nil, fmt.Errorf("unknown history driver: %q", cfg.Driver)
	}
}
