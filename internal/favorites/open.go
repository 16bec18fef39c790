// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package favorites

import (
	"context"
	"fmt"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
	BackendRedis  = "redis"
)

// StoreOptions selects and configures a backend.
type StoreOptions struct {
	Backend string

	// BadgerPath is the data directory. Empty runs Badger in memory.
	BadgerPath string

	Redis RedisOptions
}

// OpenStore builds the configured store. The returned close function is
// never nil.
func OpenStore(ctx context.Context, opts StoreOptions) (Store, func() error, error) {
	noop := func() error { return nil }

	switch opts.Backend {
	case "", BackendMemory:
		return NewMemoryStore(), noop, nil
	case BackendBadger:
		s, err := NewBadgerStore(opts.BadgerPath)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case BackendRedis:
		s, err := NewRedisStore(ctx, opts.Redis)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown favorites backend %q", opts.Backend)
	}
}
