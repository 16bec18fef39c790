// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/tomtom215/wayfinder/internal/models"
)

// RateLimited throttles calls to the wrapped Store with a token bucket.
// Each call waits for a token and gives up when ctx is done.
type RateLimited struct {
	store   Store
	limiter *rate.Limiter
}

// NewRateLimited allows rps calls per second with bursts of up to burst.
func NewRateLimited(store Store, rps float64, burst int) *RateLimited {
	if burst < 1 {
		burst = 1
	}
	return &RateLimited{store: store, limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

func (r *RateLimited) wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("catalog rate limit: %w", err)
	}
	return nil
}

// GetByID implements discovery.CatalogStore.
func (r *RateLimited) GetByID(ctx context.Context, id string) (*models.PointOfInterest, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.store.GetByID(ctx, id)
}

// GetByIDs implements discovery.CatalogStore.
func (r *RateLimited) GetByIDs(ctx context.Context, ids []string) ([]models.PointOfInterest, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.store.GetByIDs(ctx, ids)
}

// GetByCategory implements discovery.CatalogStore.
func (r *RateLimited) GetByCategory(ctx context.Context, category models.Category, limit int) ([]models.PointOfInterest, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.store.GetByCategory(ctx, category, limit)
}

// GetPopular implements discovery.CatalogStore.
func (r *RateLimited) GetPopular(ctx context.Context, limit int) ([]models.PointOfInterest, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.store.GetPopular(ctx, limit)
}

// GetAll implements discovery.CatalogStore.
func (r *RateLimited) GetAll(ctx context.Context, limit int) ([]models.PointOfInterest, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.store.GetAll(ctx, limit)
}

// Upsert implements Store. Writes are not throttled.
func (r *RateLimited) Upsert(ctx context.Context, points ...models.PointOfInterest) error {
	return r.store.Upsert(ctx, points...)
}
