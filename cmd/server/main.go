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
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/rohits-web03/myspace/internal/api"
	"github.com/rohits-web03/myspace/internal/api/handlers"
	"github.com/rohits-web03/myspace/internal/api/services"
	"github.com/rohits-web03/myspace/internal/auth"
	"github.com/rohits-web03/myspace/internal/cleanup"
	"github.com/rohits-web03/myspace/internal/config"
	"github.com/rohits-web03/myspace/internal/logging"
	"github.com/rohits-web03/myspace/internal/media"
	"github.com/rohits-web03/myspace/internal/repositories"
	"github.com/rohits-web03/myspace/internal/repositories/memory"
)

const shutdownTimeout = 15 * time.Second

// @title MySpace API
// @version 1.0
// @description Personal notes, contacts and an image feed with likes and comments.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logging.New(os.Stdout, logging.ParseLevel(cfg.LogLevel), cfg.IsProduction())
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer store.Close()

	images, err := media.New(ctx, cfg.Media, log)
	if err != nil {
		return fmt.Errorf("media store: %w", err)
	}

	maintainer := cleanup.NewMaintainer(store, images, log)
	if cfg.ReconcileOnStart {
		n, err := maintainer.ReconcileAll(ctx)
		if err != nil {
			log.Error("Reference reconcile incomplete", "reconciled", n, "error", err)
		} else {
			log.Info("References reconciled", "users", n)
		}
	}
	go maintainer.Start(ctx, cfg.CleanupInterval)

	var google handlers.GoogleProvider
	if cfg.Google.Enabled() {
		google = services.NewGoogleOAuth(cfg.Google)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := api.SetupRouter(api.Deps{
		Config:   cfg,
		Store:    store,
		Images:   images,
		Tokens:   auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL),
		Cascade:  maintainer,
		Google:   google,
		Registry: reg,
		Log:      log,
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
		// Uploads need a longer read window than plain JSON requests.
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting MySpace server", "port", cfg.Port, "storage", cfg.StorageDriver, "media", cfg.Media.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("could not listen on port %s: %w", cfg.Port, err)
		}
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func openStore(cfg config.Config, log *slog.Logger) (*repositories.Store, error) {
	if cfg.StorageDriver == config.StorageMemory {
		log.Warn("Using in-memory storage; data is lost on restart")
		return memory.New(), nil
	}
	store, err := repositories.Open(cfg.DatabaseURL, log)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	log.Info("Database connected")
	return store, nil
}
