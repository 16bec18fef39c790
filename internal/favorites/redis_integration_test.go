// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

//go:build integration

package favorites

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/wayfinder/internal/testinfra"
)

func TestRedisStore_Contract(t *testing.T) {
	addr := testinfra.StartRedis(t)

	store, err := NewRedisStore(context.Background(), RedisOptions{Addr: addr})
	if err != nil {
		t.Fatalf("NewRedisStore() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	// Each subtest gets its own key prefix so they share one container.
	runStoreContract(t, func(*testing.T) Store {
		return &RedisStore{
			client: store.client,
			prefix: "test:" + uuid.New().String() + ":",
			now:    store.now,
		}
	})
}
