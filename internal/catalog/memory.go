// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	"context"
	"slices"
	"sync"

	"github.com/tomtom215/wayfinder/internal/models"
)

// MemoryStore is a map-backed Store. It is safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	byID   map[string]models.PointOfInterest
	sorted []models.PointOfInterest
}

// NewMemoryStore returns a store holding points.
func NewMemoryStore(points ...models.PointOfInterest) *MemoryStore {
	s := &MemoryStore{byID: make(map[string]models.PointOfInterest, len(points))}
	for i := range points {
		s.byID[points[i].ID] = points[i]
	}
	s.reindex()
	return s
}

// reindex rebuilds the sorted view. Callers hold the write lock.
func (s *MemoryStore) reindex() {
	s.sorted = make([]models.PointOfInterest, 0, len(s.byID))
	for id := range s.byID {
		s.sorted = append(s.sorted, s.byID[id])
	}
	sortPoints(s.sorted)
}

// Len returns the number of stored points.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// Count implements the same contract as the database stores.
func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.Len(), nil
}

// GetByID implements discovery.CatalogStore.
func (s *MemoryStore) GetByID(ctx context.Context, id string) (*models.PointOfInterest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetByIDs implements discovery.CatalogStore.
func (s *MemoryStore) GetByIDs(ctx context.Context, ids []string) ([]models.PointOfInterest, error) {
	out := make([]models.PointOfInterest, 0, len(ids))
	for _, chunk := range ChunkIDs(ids, BatchSize) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.mu.RLock()
		for _, id := range chunk {
			if p, ok := s.byID[id]; ok {
				out = append(out, p)
			}
		}
		s.mu.RUnlock()
	}
	sortPoints(out)
	return out, nil
}

// GetByCategory implements discovery.CatalogStore.
func (s *MemoryStore) GetByCategory(ctx context.Context, category models.Category, limit int) ([]models.PointOfInterest, error) {
	return s.collect(ctx, limit, func(p *models.PointOfInterest) bool {
		return p.Category == category
	})
}

// GetPopular implements discovery.CatalogStore.
func (s *MemoryStore) GetPopular(ctx context.Context, limit int) ([]models.PointOfInterest, error) {
	return s.collect(ctx, limit, func(p *models.PointOfInterest) bool {
		return p.Rating >= PopularMinRating
	})
}

// GetAll implements discovery.CatalogStore.
func (s *MemoryStore) GetAll(ctx context.Context, limit int) ([]models.PointOfInterest, error) {
	return s.collect(ctx, limit, func(*models.PointOfInterest) bool { return true })
}

func (s *MemoryStore) collect(ctx context.Context, limit int, keep func(*models.PointOfInterest) bool) ([]models.PointOfInterest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit = normalizeLimit(limit)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.PointOfInterest, 0, min(limit, len(s.sorted)))
	for i := range s.sorted {
		if len(out) >= limit {
			break
		}
		if keep(&s.sorted[i]) {
			out = append(out, s.sorted[i])
		}
	}
	return out, nil
}

// Upsert implements Store.
func (s *MemoryStore) Upsert(ctx context.Context, points ...models.PointOfInterest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range points {
		p := points[i]
		p.Tags = slices.Clone(p.Tags)
		p.Images = slices.Clone(p.Images)
		s.byID[p.ID] = p
	}
	s.reindex()
	return nil
}
