// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	"context"
	"time"

	"github.com/tomtom215/wayfinder/internal/metrics"
	"github.com/tomtom215/wayfinder/internal/models"
)

// Instrumented records per-operation latency and errors for the wrapped Store.
type Instrumented struct {
	store   Store
	backend string
}

// Instrument wraps store, labelling its metrics with backend.
func Instrument(backend string, store Store) *Instrumented {
	return &Instrumented{store: store, backend: backend}
}

// Backend returns the metrics label.
func (i *Instrumented) Backend() string { return i.backend }

func (i *Instrumented) observe(op string, start time.Time, err error) {
	metrics.RecordCatalogCall(i.backend, op, time.Since(start), err)
}

// GetByID implements discovery.CatalogStore.
func (i *Instrumented) GetByID(ctx context.Context, id string) (*models.PointOfInterest, error) {
	start := time.Now()
	p, err := i.store.GetByID(ctx, id)
	i.observe("get_by_id", start, err)
	return p, err
}

// GetByIDs implements discovery.CatalogStore.
func (i *Instrumented) GetByIDs(ctx context.Context, ids []string) ([]models.PointOfInterest, error) {
	start := time.Now()
	points, err := i.store.GetByIDs(ctx, ids)
	i.observe("get_by_ids", start, err)
	return points, err
}

// GetByCategory implements discovery.CatalogStore.
func (i *Instrumented) GetByCategory(ctx context.Context, category models.Category, limit int) ([]models.PointOfInterest, error) {
	start := time.Now()
	points, err := i.store.GetByCategory(ctx, category, limit)
	i.observe("get_by_category", start, err)
	return points, err
}

// GetPopular implements discovery.CatalogStore.
func (i *Instrumented) GetPopular(ctx context.Context, limit int) ([]models.PointOfInterest, error) {
	start := time.Now()
	points, err := i.store.GetPopular(ctx, limit)
	i.observe("get_popular", start, err)
	return points, err
}

// GetAll implements discovery.CatalogStore.
func (i *Instrumented) GetAll(ctx context.Context, limit int) ([]models.PointOfInterest, error) {
	start := time.Now()
	points, err := i.store.GetAll(ctx, limit)
	i.observe("get_all", start, err)
	return points, err
}

// Upsert implements Store.
func (i *Instrumented) Upsert(ctx context.Context, points ...models.PointOfInterest) error {
	start := time.Now()
	err := i.store.Upsert(ctx, points...)
	i.observe("upsert", start, err)
	return err
}
