// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfinder/internal/cache"
	"github.com/tomtom215/wayfinder/internal/metrics"
)

// Backend names.
const (
	BackendMemory = "memory"
	BackendDuckDB = "duckdb"
	BackendMongo  = "mongo"
)

// Options selects and configures the catalog backend and its decorators.
type Options struct {
	Backend string
	DuckDB  DuckDBOptions
	Mongo   MongoOptions

	// Breaker enables the circuit breaker when non-nil.
	Breaker *BreakerSettings

	// RateLimitRPS enables the rate limiter when positive.
	RateLimitRPS   float64
	RateLimitBurst int

	// CacheSize enables the point cache when positive.
	CacheSize int
	CacheTTL  time.Duration

	// Seed loads the built-in sample points, or SeedFile when it is set.
	Seed     bool
	SeedFile string
}

// Catalog is an opened backend with its decorator chain.
type Catalog struct {
	store   Store
	backend string
	breaker *CircuitBreaker
	cached  *Cached
	pinger  func(context.Context) error
	closer  func(context.Context) error
	counter func(context.Context) (int, error)
}

// Open connects the configured backend, seeds it when requested, and
// wraps it as instrumentation, then rate limiting, then the circuit breaker,
// then the point cache.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Open(ctx context.Context, opts Options, logger zerolog.Logger) (*Catalog, error) {
	c := &Catalog{backend: opts.Backend}

	var base Store
	switch opts.Backend {
	case "", BackendMemory:
		c.backend = BackendMemory
		mem := NewMemoryStore()
		base = mem
		c.pinger = func(context.Context) error { return nil }
		c.closer = func(context.Context) error { return nil }
		c.counter = mem.Count
	case BackendDuckDB:
		duck, err := NewDuckDBStore(ctx, opts.DuckDB, logger)
		if err != nil {
			return nil, err
		}
		base = duck
		c.pinger = duck.Ping
		c.closer = func(context.Context) error { return duck.Close() }
		c.counter = duck.Count
	case BackendMongo:
		mongoStore, err := NewMongoStore(ctx, opts.Mongo, logger)
		if err != nil {
			return nil, err
		}
		base = mongoStore
		c.pinger = mongoStore.Ping
		c.closer = mongoStore.Close
		c.counter = mongoStore.Count
	default:
		return nil, fmt.Errorf("unknown catalog backend %q", opts.Backend)
	}

	if err := c.seed(ctx, base, opts, logger); err != nil {
		_ = c.closer(ctx) //nolint:errcheck // cleanup path
		return nil, err
	}

	store := Store(Instrument(c.backend, base))
	if opts.RateLimitRPS > 0 {
		store = NewRateLimited(store, opts.RateLimitRPS, opts.RateLimitBurst)
	}
	if opts.Breaker != nil {
		settings := *opts.Breaker
		if settings.Name == "" {
			settings.Name = "catalog-" + c.backend
		}
		c.breaker = NewCircuitBreaker(store, settings, logger)
		store = c.breaker
	}
	if opts.CacheSize > 0 {
		c.cached = NewCached(store, c.backend, opts.CacheSize, opts.CacheTTL)
		store = c.cached
	}
	c.store = store
	return c, nil
}

func (c *Catalog) seed(ctx context.Context, store Store, opts Options, logger zerolog.Logger) error {
	if opts.Seed || opts.SeedFile != "" {
		points := SamplePoints()
		if opts.SeedFile != "" {
			var err error
			if points, err = LoadSeedFile(opts.SeedFile); err != nil {
				return err
			}
		}
		if err := Seed(ctx, store, points); err != nil {
			return err
		}
		logger.Info().Str("component", "catalog").Str("backend", c.backend).Int("points", len(points)).Msg("Catalog seeded")
	}

	n, err := c.counter(ctx)
	if err != nil {
		return err
	}
	metrics.CatalogPoints.WithLabelValues(c.backend).Set(float64(n))
	return nil
}

// Store returns the decorated store.
func (c *Catalog) Store() Store { return c.store }

// Backend returns the backend name.
func (c *Catalog) Backend() string { return c.backend }

// BreakerState returns the circuit breaker state, or "disabled".
func (c *Catalog) BreakerState() string {
	if c.breaker == nil {
		return "disabled"
	}
	return c.breaker.State()
}

// CacheStats returns the point cache counters. ok is false when the cache
// is disabled.
func (c *Catalog) CacheStats() (stats cache.Stats, ok bool) {
	if c.cached == nil {
		return cache.Stats{}, false
	}
	return c.cached.Stats(), true
}

// Ping checks backend connectivity, bypassing the decorators.
func (c *Catalog) Ping(ctx context.Context) error { return c.pinger(ctx) }

// Close releases the backend.
func (c *Catalog) Close(ctx context.Context) error { return c.closer(ctx) }
