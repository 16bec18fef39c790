// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/tomtom215/wayfinder/internal/models"
)

// stubStore delegates to a MemoryStore and can be told to fail.
type stubStore struct {
	*MemoryStore
	calls atomic.Int32

	mu  sync.Mutex
	err error
}

func newStubStore() *stubStore {
	return &stubStore{MemoryStore: NewMemoryStore(fixturePoints()...)}
}

func (s *stubStore) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *stubStore) fail() error {
	s.calls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *stubStore) GetByID(ctx context.Context, id string) (*models.PointOfInterest, error) {
	if err := s.fail(); err != nil {
		return nil, err
	}
	return s.MemoryStore.GetByID(ctx, id)
}

func (s *stubStore) GetByIDs(ctx context.Context, ids []string) ([]models.PointOfInterest, error) {
	if err := s.fail(); err != nil {
		return nil, err
	}
	return s.MemoryStore.GetByIDs(ctx, ids)
}

func (s *stubStore) GetByCategory(ctx context.Context, c models.Category, limit int) ([]models.PointOfInterest, error) {
	if err := s.fail(); err != nil {
		return nil, err
	}
	return s.MemoryStore.GetByCategory(ctx, c, limit)
}

func (s *stubStore) GetPopular(ctx context.Context, limit int) ([]models.PointOfInterest, error) {
	if err := s.fail(); err != nil {
		return nil, err
	}
	return s.MemoryStore.GetPopular(ctx, limit)
}

func (s *stubStore) GetAll(ctx context.Context, limit int) ([]models.PointOfInterest, error) {
	if err := s.fail(); err != nil {
		return nil, err
	}
	return s.MemoryStore.GetAll(ctx, limit)
}

func (s *stubStore) Upsert(ctx context.Context, points ...models.PointOfInterest) error {
	if err := s.fail(); err != nil {
		return err
	}
	return s.MemoryStore.Upsert(ctx, points...)
}
