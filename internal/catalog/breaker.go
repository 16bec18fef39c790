// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/wayfinder/internal/metrics"
	"github.com/tomtom215/wayfinder/internal/models"
)

// BreakerSettings configures a CircuitBreaker.
type BreakerSettings struct {
	Name string

	// MaxRequests is the number of calls allowed through while half-open.
	MaxRequests uint32

	// Interval resets the failure counts while closed.
	Interval time.Duration

	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration

	// MinRequests is the sample size required before FailureRatio applies.
	MinRequests uint32

	FailureRatio float64
}

// DefaultBreakerSettings returns 3 half-open trial requests, a 1 minute window, a
// 30 second open timeout, and a 60% failure ratio over at least 10 requests.
func DefaultBreakerSettings(name string) BreakerSettings {
	return BreakerSettings{
		Name:         name,
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      30 * time.Second,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

// CircuitBreaker wraps a Store so that calls fail fast while the backend is
// unhealthy. It never retries.
//
// The breaker uses real time for its interval and timeout; tests drive it with
// short timeouts rather than a fake clock.
type CircuitBreaker struct {
	store  Store
	cb     *gobreaker.CircuitBreaker[any]
	name   string
	logger zerolog.Logger
}

// NewCircuitBreaker wraps store.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewCircuitBreaker(store Store, settings BreakerSettings, logger zerolog.Logger) *CircuitBreaker {
	if settings.Name == "" {
		settings.Name = "catalog"
	}
	b := &CircuitBreaker{
		store:  store,
		name:   settings.Name,
		logger: logger.With().Str("component", "catalog").Str("breaker", settings.Name).Logger(),
	}

	metrics.CircuitBreakerState.WithLabelValues(b.name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)

	b.cb = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= settings.FailureRatio {
				b.logger.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", ratio*100).Msg("Opening circuit")
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			b.logger.Info().Str("from", fromStr).Str("to", toStr).Msg("Circuit breaker state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
		// Caller cancellation says nothing about backend health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})
	return b
}

// State returns "closed", "half-open" or "open".
func (b *CircuitBreaker) State() string {
	return stateToString(b.cb.State())
}

// IsOpen reports whether err is a fast-fail rejection from an open or
// saturated half-open breaker.
func IsOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func (b *CircuitBreaker) execute(fn func() (any, error)) (any, error) {
	result, err := b.cb.Execute(fn)
	if err != nil {
		if IsOpen(err) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			b.logger.Warn().Err(err).Msg("Request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(b.cb.Counts().ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return result, nil
}

// castResult type-asserts a breaker result. A nil result yields the zero T.
func castResult[T any](result any, err error) (T, error) {
	var zero T
	if err != nil || result == nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// GetByID implements discovery.CatalogStore.
func (b *CircuitBreaker) GetByID(ctx context.Context, id string) (*models.PointOfInterest, error) {
	return castResult[*models.PointOfInterest](b.execute(func() (any, error) {
		p, err := b.store.GetByID(ctx, id)
		if p == nil {
			return nil, err
		}
		return p, err
	}))
}

// GetByIDs implements discovery.CatalogStore.
func (b *CircuitBreaker) GetByIDs(ctx context.Context, ids []string) ([]models.PointOfInterest, error) {
	return castResult[[]models.PointOfInterest](b.execute(func() (any, error) {
		return b.store.GetByIDs(ctx, ids)
	}))
}

// GetByCategory implements discovery.CatalogStore.
func (b *CircuitBreaker) GetByCategory(ctx context.Context, category models.Category, limit int) ([]models.PointOfInterest, error) {
	return castResult[[]models.PointOfInterest](b.execute(func() (any, error) {
		return b.store.GetByCategory(ctx, category, limit)
	}))
}

// GetPopular implements discovery.CatalogStore.
func (b *CircuitBreaker) GetPopular(ctx context.Context, limit int) ([]models.PointOfInterest, error) {
	return castResult[[]models.PointOfInterest](b.execute(func() (any, error) {
		return b.store.GetPopular(ctx, limit)
	}))
}

// GetAll implements discovery.CatalogStore.
func (b *CircuitBreaker) GetAll(ctx context.Context, limit int) ([]models.PointOfInterest, error) {
	return castResult[[]models.PointOfInterest](b.execute(func() (any, error) {
		return b.store.GetAll(ctx, limit)
	}))
}

// Upsert implements Store.
func (b *CircuitBreaker) Upsert(ctx context.Context, points ...models.PointOfInterest) error {
	_, err := b.execute(func() (any, error) {
		return nil, b.store.Upsert(ctx, points...)
	})
	return err
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
