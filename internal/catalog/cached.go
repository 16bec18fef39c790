// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	"context"
	"time"

	"github.com/tomtom215/wayfinder/internal/cache"
	"github.com/tomtom215/wayfinder/internal/metrics"
	"github.com/tomtom215/wayfinder/internal/models"
)

// Cached keeps points resolved by ID in an LRU. List queries always go to
// the wrapped store; Upsert evicts the written IDs.
type Cached struct {
	store   Store
	points  *cache.LRU[models.PointOfInterest]
	backend string
}

// NewCached caches up to size points for ttl each.
func NewCached(store Store, backend string, size int, ttl time.Duration) *Cached {
	return &Cached{
		store:   store,
		points:  cache.NewLRU[models.PointOfInterest](size, ttl),
		backend: backend,
	}
}

// Stats returns the cache counters.
func (c *Cached) Stats() cache.Stats { return c.points.Stats() }

func (c *Cached) lookup(id string) (models.PointOfInterest, bool) {
	p, ok := c.points.Get(id)
	metrics.RecordCatalogCache(c.backend, ok)
	return p, ok
}

// GetByID implements discovery.CatalogStore. Misses are not cached.
func (c *Cached) GetByID(ctx context.Context, id string) (*models.PointOfInterest, error) {
	if p, ok := c.lookup(id); ok {
		return &p, nil
	}
	p, err := c.store.GetByID(ctx, id)
	if err != nil || p == nil {
		return p, err
	}
	c.points.Add(id, *p)
	return p, nil
}

// GetByIDs implements discovery.CatalogStore.
func (c *Cached) GetByIDs(ctx context.Context, ids []string) ([]models.PointOfInterest, error) {
	out := make([]models.PointOfInterest, 0, len(ids))
	var missing []string
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if p, ok := c.lookup(id); ok {
			out = append(out, p)
			continue
		}
		missing = append(missing, id)
	}

	if len(missing) > 0 {
		fetched, err := c.store.GetByIDs(ctx, missing)
		if err != nil {
			return nil, err
		}
		for i := range fetched {
			c.points.Add(fetched[i].ID, fetched[i])
		}
		out = append(out, fetched...)
	}

	sortPoints(out)
	return out, nil
}

// GetByCategory implements discovery.CatalogStore.
func (c *Cached) GetByCategory(ctx context.Context, category models.Category, limit int) ([]models.PointOfInterest, error) {
	return c.store.GetByCategory(ctx, category, limit)
}

// GetPopular implements discovery.CatalogStore.
func (c *Cached) GetPopular(ctx context.Context, limit int) ([]models.PointOfInterest, error) {
	return c.store.GetPopular(ctx, limit)
}

// GetAll implements discovery.CatalogStore.
func (c *Cached) GetAll(ctx context.Context, limit int) ([]models.PointOfInterest, error) {
	return c.store.GetAll(ctx, limit)
}

// Upsert implements Store.
func (c *Cached) Upsert(ctx context.Context, points ...models.PointOfInterest) error {
	err := c.store.Upsert(ctx, points...)
	for i := range points {
		c.points.Remove(points[i].ID)
	}
	return err
}
