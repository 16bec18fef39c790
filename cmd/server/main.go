// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/wayfinder/internal/api"
	"github.com/tomtom215/wayfinder/internal/catalog"
	"github.com/tomtom215/wayfinder/internal/config"
	"github.com/tomtom215/wayfinder/internal/discovery"
	"github.com/tomtom215/wayfinder/internal/events"
	"github.com/tomtom215/wayfinder/internal/favorites"
	"github.com/tomtom215/wayfinder/internal/logging"
	"github.com/tomtom215/wayfinder/internal/middleware"
	"github.com/tomtom215/wayfinder/internal/supervisor"
	"github.com/tomtom215/wayfinder/internal/supervisor/services"
)

const (
	// performanceWindow is how many recent requests /health/performance keeps.
	performanceWindow = 1000

	startupTimeout = 30 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(loggingConfig(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logging.Error().Err(err).Msg("Wayfinder stopped with error")
		stop()
		os.Exit(1) //nolint:gocritic // stop() already ran
	}
	logging.Info().Msg("Application stopped gracefully")
}

//nolint:gocyclo // sequential startup
func run(ctx context.Context, cfg *config.Config) error {
	logger := logging.Logger()
	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("catalog_backend", cfg.Catalog.Backend).
		Str("favorites_backend", cfg.Favorites.Backend).
		Str("events_backend", cfg.Events.Backend).
		Msg("Starting Wayfinder")

	startCtx, cancelStart := context.WithTimeout(ctx, startupTimeout)
	defer cancelStart()

	// Catalog
	cat, err := catalog.Open(startCtx, catalogOptions(cfg), logger)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg))
		defer cancel()
		if err := cat.Close(closeCtx); err != nil {
			logging.Error().Err(err).Msg("Error closing catalog")
		}
	}()
	logging.Info().Str("backend", cat.Backend()).Str("breaker", cat.BreakerState()).Msg("Catalog ready")

	engine, err := discovery.NewEngine(cat.Store(), discoveryConfig(cfg), logger)
	if err != nil {
		return fmt.Errorf("create discovery engine: %w", err)
	}

	// Events. The publisher stays a nil interface when disabled.
	var (
		transport *events.Transport
		publisher favorites.EventPublisher
		consumer  *events.Consumer
	)
	if eventsEnabled(cfg) {
		transport, err = events.Open(eventsOptions(cfg), logger)
		if err != nil {
			return fmt.Errorf("open events transport: %w", err)
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg))
			defer cancel()
			if err := transport.Close(closeCtx); err != nil {
				logging.Error().Err(err).Msg("Error closing events transport")
			}
		}()
		publisher = events.NewPublisher(transport.Publisher, cfg.Events.Topic, logger)
		consumer = events.NewConsumer(transport.Subscriber, cfg.Events.Topic, nil, logger)
		logging.Info().Str("backend", transport.Backend()).Str("topic", cfg.Events.Topic).Msg("Events enabled")
	} else {
		logging.Info().Msg("Events disabled (EVENTS_BACKEND=none)")
	}

	// Favorites
	favStore, closeFavorites, err := favorites.OpenStore(startCtx, favoritesOptions(cfg))
	if err != nil {
		return fmt.Errorf("open favorites store: %w", err)
	}
	defer func() {
		if err := closeFavorites(); err != nil {
			logging.Error().Err(err).Msg("Error closing favorites store")
		}
	}()

	favs, err := favorites.NewService(favStore, cat.Store(), publisher, logger)
	if err != nil {
		return fmt.Errorf("create favorites service: %w", err)
	}

	// HTTP
	perfMon := middleware.NewPerformanceMonitor(performanceWindow, middleware.DefaultSlowRequestThreshold, logger)
	handler, err := api.NewHandler(engine, favs, api.HandlerOptions{
		DefaultPageSize: cfg.API.DefaultPageSize,
		Checks:          readinessChecks(cat, favStore),
		Performance:     perfMon,
	}, logger)
	if err != nil {
		return fmt.Errorf("create API handler: %w", err)
	}

	router := api.NewRouter(handler, api.NewChiMiddleware(middlewareConfig(cfg)))
	server := &http.Server{
		Addr:              listenAddr(cfg),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// Supervisor tree
	tree, err := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: shutdownTimeout(cfg),
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	if gc := gcService(cfg, favStore, logger); gc != nil {
		if _, err := tree.Add(supervisor.LayerStorage, gc); err != nil {
			return err
		}
		logging.Info().Dur("interval", cfg.Favorites.BadgerGCInterval).Msg("Favorites GC added to supervisor tree")
	}
	if consumer != nil {
		if _, err := tree.Add(supervisor.LayerEvents, consumer); err != nil {
			return err
		}
	}
	httpService := services.NewHTTPServerService(server, services.HTTPServiceOptions{
		Addr:            server.Addr,
		ShutdownTimeout: shutdownTimeout(cfg),
	}, logger)
	if _, err := tree.Add(supervisor.LayerAPI, httpService); err != nil {
		return err
	}

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	err = tree.Serve(ctx)

	if unstopped, reportErr := tree.UnstoppedServiceReport(); reportErr == nil {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", err)
	}
	return nil
}
