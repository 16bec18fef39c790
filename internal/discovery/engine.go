// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package discovery

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfinder/internal/logging"
	"github.com/tomtom215/wayfinder/internal/metrics"
)

// Operation names used in logs and metrics.
const (
	OpSearch    = "search"
	OpRecommend = "recommend"
	OpNearby    = "nearby"
	OpLookup    = "lookup"
)

// Engine runs discovery operations against a CatalogStore.
// It is safe for concurrent use.
type Engine struct {
	store  CatalogStore
	config Config
	logger zerolog.Logger

	searches        atomic.Int64
	recommendations atomic.Int64
	nearbyScans     atomic.Int64
	lookups         atomic.Int64
	invalid         atomic.Int64
	storeFailures   atomic.Int64
}

// Stats is a snapshot of engine counters.
type Stats struct {
	Searches        int64 `json:"searches"`
	Recommendations int64 `json:"recommendations"`
	NearbyScans     int64 `json:"nearby_scans"`
	Lookups         int64 `json:"lookups"`
	Invalid         int64 `json:"invalid"`
	StoreFailures   int64 `json:"store_failures"`
}

// NewEngine creates an engine. Zero config fields take their defaults.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(store CatalogStore, cfg Config, logger zerolog.Logger) (*Engine, error) {
	if store == nil {
		return nil, errors.New("catalog store is required")
	}

	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		store:  store,
		config: cfg,
		logger: logging.Component(logger, "discovery"),
	}, nil
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Stats returns current counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Searches:        e.searches.Load(),
		Recommendations: e.recommendations.Load(),
		NearbyScans:     e.nearbyScans.Load(),
		Lookups:         e.lookups.Load(),
		Invalid:         e.invalid.Load(),
		StoreFailures:   e.storeFailures.Load(),
	}
}

func (e *Engine) requestLogger(ctx context.Context) zerolog.Logger {
	if id := logging.RequestIDFromContext(ctx); id != "" {
		return e.logger.With().Str("request_id", id).Logger()
	}
	return e.logger
}

// rejected records a validation failure and passes err through.
func (e *Engine) rejected(op string, start time.Time, err error) error {
	e.invalid.Add(1)
	metrics.RecordDiscovery(op, "invalid", time.Since(start), 0)
	return err
}

// storeFailed logs cause and returns the generic repository error for op.
func (e *Engine) storeFailed(ctx context.Context, op string, start time.Time, sentinel, cause error) error {
	e.storeFailures.Add(1)
	metrics.RecordDiscovery(op, "error", time.Since(start), 0)

	l := e.requestLogger(ctx)
	l.Error().
		Err(cause).
		Str("operation", op).
		Dur("elapsed", time.Since(start)).
		Msg("catalog store call failed")

	return NewRepositoryError(sentinel, cause)
}

func (e *Engine) succeeded(op string, start time.Time, n int) {
	metrics.RecordDiscovery(op, "success", time.Since(start), n)
}
