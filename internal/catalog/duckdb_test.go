// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestDuckDB(t *testing.T) *DuckDBStore {
	t.Helper()

	s, err := NewDuckDBStore(context.Background(), DuckDBOptions{Path: MemoryPath, Threads: 1}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewDuckDBStore() error = %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Logf("close: %v", err)
		}
	})
	return s
}

func TestDuckDBStore_Contract(t *testing.T) {
	runStoreContract(t, func(t *testing.T) Store { return newTestDuckDB(t) })
}

func TestDuckDBStore_Count(t *testing.T) {
	s := newTestDuckDB(t)
	ctx := context.Background()

	if n, err := s.Count(ctx); err != nil || n != 0 {
		t.Fatalf("Count() on empty = %d, %v", n, err)
	}
	if err := s.Upsert(ctx, fixturePoints()...); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if n, err := s.Count(ctx); err != nil || n != 5 {
		t.Errorf("Count() = %d, %v; want 5", n, err)
	}
	if err := s.Ping(ctx); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

func TestDuckDBStore_FilePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.duckdb")
	ctx := context.Background()

	s, err := NewDuckDBStore(ctx, DuckDBOptions{Path: path, Threads: 1, MaxMemory: "256MB"}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewDuckDBStore() error = %v", err)
	}
	if err := s.Upsert(ctx, fixturePoints()...); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := NewDuckDBStore(ctx, DuckDBOptions{Path: path, Threads: 1}, zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetPopular(ctx, 10)
	if err != nil {
		t.Fatalf("GetPopular() error = %v", err)
	}
	wantIDs(t, got, "delta", "alpha", "bravo", "echo")
}

func TestDuckDBDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		path      string
		maxMemory string
		contains  []string
		excludes  []string
	}{
		{
			name:     "memory",
			path:     MemoryPath,
			contains: []string{":memory:?", "threads=2"},
			excludes: []string{"access_mode", "max_memory"},
		},
		{
			name:      "file",
			path:      "/data/catalog.duckdb",
			maxMemory: "1GB",
			contains:  []string{"/data/catalog.duckdb?access_mode=read_write", "threads=2", "max_memory=1GB", "autoload_known_extensions=false"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dsn := duckdbDSN(tt.path, 2, tt.maxMemory)
			for _, want := range tt.contains {
				if !strings.Contains(dsn, want) {
					t.Errorf("dsn %q missing %q", dsn, want)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(dsn, bad) {
					t.Errorf("dsn %q should not contain %q", dsn, bad)
				}
			}
		})
	}
}
