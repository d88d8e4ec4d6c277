package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/storegate/console/api/routes"
	"github.com/storegate/console/internal/credstore"
	"github.com/storegate/console/internal/identity"
	"github.com/storegate/console/internal/session"
	"github.com/storegate/console/pkg/config"
	"github.com/storegate/console/pkg/logger"
	"github.com/storegate/console/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "console"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "console",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	store, err := credstore.New(context.Background(), cfg.Store, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap credential store", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logg.Error(context.Background(), "error closing credential store", err)
		}
	}()

	identityClient, err := identity.NewClient(cfg.Identity, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create identity client", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	authMetrics := metrics.NewAuthMetrics(registry)

	sessions, err := session.NewManager(session.ManagerParams{
		Store:           store,
		Identity:        identityClient,
		OfflineFallback: cfg.Session.OfflineFallback,
		Logger:          logg,
		Metrics:         authMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	// Hydrate once before any routing decision is made.
	if err := sessions.Restore(context.Background()); err != nil {
		logg.Warn(context.Background(), "session restore failed, starting unauthenticated")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":           cfg.App.Env,
		"addr":          addr,
		"store_backend": cfg.Store.Backend,
	})
	logg.Info(ctx, "starting console server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, sessions, store, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "console server stopped unexpectedly", err)
		os.Exit(1)
	}
}
