package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/lumyn/showdown/internal/config"
	"github.com/lumyn/showdown/internal/history"
	"github.com/lumyn/showdown/internal/metrics"
	"github.com/lumyn/showdown/internal/platform/hash"
	"github.com/lumyn/showdown/internal/platform/jwt"
	"github.com/lumyn/showdown/internal/platform/router"
	"github.com/lumyn/showdown/internal/platform/validation"
	"github.com/lumyn/showdown/internal/room"
)

type Providers struct {
	Signer    jwt.Signer
	Hasher    hash.Hasher
	Validator validation.Validator
	Router    router.Router
	Metrics   *metrics.Metrics
	Archive   history.Service
}

type App struct {
	server          *http.Server
	config          *config.Config
	middlewares     []func(http.Handler) http.Handler
	stop            context.CancelFunc
	shutdownTimeout time.Duration
	signer          jwt.Signer
	hasher          hash.Hasher
	validator       validation.Validator
	router          router.Router
	metrics         *metrics.Metrics
	archive         history.Service
	rooms           room.Store
	janitor         *room.Janitor
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.router.Use(mw)
	}
}

func (a *App) setupRoutes() {
	roomSvc := room.NewService(a.rooms, a.hasher, a.archive, a.metrics)
	roomHandler := room.NewHandler(roomSvc, a.signer, a.config.JWT.TTL.Duration)
	mountRoomRoutes(a.router, roomHandler, a.validator, a.signer, a.config.Server.MaxBodyBytes)

	historyHandler := history.NewHandler(a.archive)
	mountMatchRoutes(a.router, historyHandler)

	mountOpsRoutes(a.router, a.metrics)
}

func (a *App) Start(ctx context.Context) error {
	a.registerMiddlewares()
	a.setupRoutes()

	go a.janitor.Run(ctx)

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

func New(cfg *config.Config, providers *Providers, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: providers.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	store := room.NewMemoryStore()
	janitor := room.NewJanitor(store, cfg.Room.TTL.Duration, cfg.Room.SweepInterval.Duration, providers.Metrics)

	return &App{
		config:          cfg,
		signer:          providers.Signer,
		hasher:          providers.Hasher,
		validator:       providers.Validator,
		router:          providers.Router,
		metrics:         providers.Metrics,
		archive:         providers.Archive,
		rooms:           store,
		janitor:         janitor,
		server:          server,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}
}
