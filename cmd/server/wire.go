// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfinder/internal/api"
	"github.com/tomtom215/wayfinder/internal/catalog"
	"github.com/tomtom215/wayfinder/internal/config"
	"github.com/tomtom215/wayfinder/internal/discovery"
	"github.com/tomtom215/wayfinder/internal/events"
	"github.com/tomtom215/wayfinder/internal/favorites"
	"github.com/tomtom215/wayfinder/internal/logging"
	"github.com/tomtom215/wayfinder/internal/models"
	"github.com/tomtom215/wayfinder/internal/supervisor/services"
)

// Config to component option mappers. Kept free of side effects so they can
// be tested without opening anything.

func loggingConfig(cfg *config.Config) logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = cfg.Logging.Level
	lc.Format = cfg.Logging.Format
	lc.Caller = cfg.Logging.Caller
	return lc
}

func catalogOptions(cfg *config.Config) catalog.Options {
	c := cfg.Catalog
	opts := catalog.Options{
		Backend: c.Backend,
		DuckDB: catalog.DuckDBOptions{
			Path:      c.DuckDB.Path,
			MaxMemory: c.DuckDB.MaxMemory,
			Threads:   c.DuckDB.Threads,
		},
		Mongo: catalog.MongoOptions{
			URI:        c.Mongo.URI,
			Database:   c.Mongo.Database,
			Collection: c.Mongo.Collection,
			Timeout:    c.Mongo.Timeout,
		},
		Seed:     c.Seed,
		SeedFile: c.SeedFile,
	}
	if c.Breaker.Enabled {
		opts.Breaker = &catalog.BreakerSettings{
			MaxRequests:  c.Breaker.MaxRequests,
			Interval:     c.Breaker.Interval,
			Timeout:      c.Breaker.Timeout,
			MinRequests:  c.Breaker.MinRequests,
			FailureRatio: c.Breaker.FailureRatio,
		}
	}
	if c.RateLimit.Enabled {
		opts.RateLimitRPS = c.RateLimit.RPS
		opts.RateLimitBurst = c.RateLimit.Burst
	}
	if c.Cache.Enabled {
		opts.CacheSize = c.Cache.Size
		opts.CacheTTL = c.Cache.TTL
	}
	return opts
}

func discoveryConfig(cfg *config.Config) discovery.Config {
	d := cfg.Discovery
	return discovery.Config{
		SearchDefaultLimit:    cfg.API.DefaultPageSize,
		SearchCandidateLimit:  d.SearchCandidateLimit,
		RecommendDefaultLimit: d.RecommendLimit,
		RecommendRadiusKm:     d.RecommendRadiusKm,
		RecommendMinRating:    models.Float(d.RecommendMinRating),
		RecommendOverFetch:    d.RecommendOverFetch,
		NearbyDefaultRadiusKm: d.NearbyRadiusKm,
		NearbyDefaultLimit:    d.NearbyLimit,
		NearbyScanLimit:       d.NearbyScanLimit,
		LookupDefaultLimit:    cfg.API.DefaultPageSize,
	}
}

func favoritesOptions(cfg *config.Config) favorites.StoreOptions {
	f := cfg.Favorites
	return favorites.StoreOptions{
		Backend:    f.Backend,
		BadgerPath: f.BadgerPath,
		Redis: favorites.RedisOptions{
			Addr:      f.Redis.Addr,
			Password:  f.Redis.Password,
			DB:        f.Redis.DB,
			KeyPrefix: f.Redis.KeyPrefix,
		},
	}
}

func eventsOptions(cfg *config.Config) events.Options {
	e := cfg.Events
	return events.Options{
		Backend: e.Backend,
		NATS: events.NATSOptions{
			URL:      e.NATS.URL,
			Embedded: e.NATS.Embedded,
			Host:     e.NATS.Host,
			Port:     e.NATS.Port,
		},
	}
}

func middlewareConfig(cfg *config.Config) *api.ChiMiddlewareConfig {
	mc := api.DefaultChiMiddlewareConfig()
	mc.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mc.RateLimitRequests = cfg.Security.RateLimitReqs
	mc.RateLimitWindow = cfg.Security.RateLimitWindow
	mc.RateLimitDisabled = cfg.Security.RateLimitDisabled
	mc.RequestTimeout = cfg.API.RequestTimeout
	return mc
}

func eventsEnabled(cfg *config.Config) bool {
	return cfg.Events.Backend != "" && cfg.Events.Backend != events.BackendNone
}

// pinger is implemented by stores with a cheap connectivity check.
type pinger interface {
	Ping(ctx context.Context) error
}

// readinessChecks builds the /health/ready checks. The favorites store is
// checked only when it has a connectivity check of its own.
func readinessChecks(cat *catalog.Catalog, favStore favorites.Store) []api.ReadinessCheck {
	checks := []api.ReadinessCheck{
		{Name: "catalog", Check: cat.Ping},
	}
	if p, ok := favStore.(pinger); ok {
		checks = append(checks, api.ReadinessCheck{Name: "favorites", Check: p.Ping})
	}
	return checks
}

// gcService returns the value log GC service for the Badger favorites
// backend, or nil when the backend has nothing to collect.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func gcService(cfg *config.Config, favStore favorites.Store, logger zerolog.Logger) *services.MaintenanceService {
	badgerStore, ok := favStore.(*favorites.BadgerStore)
	if !ok || cfg.Favorites.BadgerGCInterval <= 0 {
		return nil
	}
	return services.NewMaintenanceService(
		services.TaskFunc(badgerStore.RunGC),
		services.MaintenanceConfig{
			Name:     "favorites-gc",
			Interval: cfg.Favorites.BadgerGCInterval,
		},
		logger,
	)
}

func listenAddr(cfg *config.Config) string {
	return fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
}

func shutdownTimeout(cfg *config.Config) time.Duration {
	if cfg.Server.ShutdownTimeout > 0 {
		return cfg.Server.ShutdownTimeout
	}
	return services.DefaultShutdownTimeout
}
