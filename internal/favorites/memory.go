// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package favorites

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps favorites in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string][]string
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string][]string)}
}

// Add implements Store.
func (m *MemoryStore) Add(ctx context.Context, userID, pointID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.add(userID, pointID), nil
}

func (m *MemoryStore) add(userID, pointID string) bool {
	ids := m.users[userID]
	if slices.Contains(ids, pointID) {
		return false
	}
	m.users[userID] = append(ids, pointID)
	return true
}

// Remove implements Store.
func (m *MemoryStore) Remove(ctx context.Context, userID, pointID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.remove(userID, pointID), nil
}

func (m *MemoryStore) remove(userID, pointID string) bool {
	ids := m.users[userID]
	i := slices.Index(ids, pointID)
	if i < 0 {
		return false
	}
	ids = slices.Delete(ids, i, i+1)
	if len(ids) == 0 {
		delete(m.users, userID)
	} else {
		m.users[userID] = ids
	}
	return true
}

// Toggle implements Store.
func (m *MemoryStore) Toggle(ctx context.Context, userID, pointID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.remove(userID, pointID) {
		return false, nil
	}
	return m.add(userID, pointID), nil
}

// Contains implements Store.
func (m *MemoryStore) Contains(ctx context.Context, userID, pointID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Contains(m.users[userID], pointID), nil
}

// List implements Store.
func (m *MemoryStore) List(ctx context.Context, userID string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.users[userID]))
	copy(out, m.users[userID])
	return out, nil
}
