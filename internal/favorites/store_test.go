// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package favorites

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestMemoryStore_Contract(t *testing.T) {
	t.Parallel()
	runStoreContract(t, func(*testing.T) Store { return NewMemoryStore() })
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewMemoryStore()
	if _, err := s.Add(ctx, "u1", "p1"); !errors.Is(err, context.Canceled) {
		t.Errorf("Add() error = %v, want context.Canceled", err)
	}
	if _, err := s.List(ctx, "u1"); !errors.Is(err, context.Canceled) {
		t.Errorf("List() error = %v, want context.Canceled", err)
	}
}

func TestMemoryStore_ListReturnsCopy(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()
	_, _ = s.Add(ctx, "u1", "p1")

	ids, _ := s.List(ctx, "u1")
	ids[0] = "mutated"

	if ok, _ := s.Contains(ctx, "u1", "p1"); !ok {
		t.Error("mutating List() result changed the store")
	}
}

func newTestBadgerStore(t *testing.T) *BadgerStore {
	t.Helper()
	s, err := NewBadgerStore("")
	if err != nil {
		t.Fatalf("NewBadgerStore() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBadgerStore_Contract(t *testing.T) {
	t.Parallel()
	runStoreContract(t, func(t *testing.T) Store { return newTestBadgerStore(t) })
}

func TestBadgerStore_Persistence(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewBadgerStore(dir)
	if err != nil {
		t.Fatalf("NewBadgerStore() error = %v", err)
	}
	_, _ = s.Add(ctx, "u1", "p1")
	_, _ = s.Add(ctx, "u1", "p2")
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	s, err = NewBadgerStore(dir)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer s.Close()

	ids, err := s.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if strings.Join(ids, ",") != "p1,p2" {
		t.Errorf("List() after reopen = %v, want [p1 p2]", ids)
	}
}

func TestBadgerStore_RunGC(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	mem := newTestBadgerStore(t)
	if err := mem.RunGC(ctx); err != nil {
		t.Errorf("RunGC() in memory error = %v", err)
	}

	disk, err := NewBadgerStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewBadgerStore() error = %v", err)
	}
	defer disk.Close()
	_, _ = disk.Add(ctx, "u1", "p1")
	_, _ = disk.Remove(ctx, "u1", "p1")
	if err := disk.RunGC(ctx); err != nil {
		t.Errorf("RunGC() on disk error = %v", err)
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	if err := disk.RunGC(canceled); err == nil {
		t.Error("RunGC() with canceled context should fail")
	}
}

func TestBadgerStore_ConcurrentAdds(t *testing.T) {
	t.Parallel()

	s := newTestBadgerStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, id := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			for range 10 {
				if _, err := s.Add(ctx, "u1", id); err == nil {
					return
				}
			}
		}(id)
	}
	wg.Wait()

	ids, err := s.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(ids) != 4 {
		t.Errorf("List() = %v, want 4 ids", ids)
	}
}

func TestOpenStore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    StoreOptions
		wantErr string
	}{
		{name: "default", opts: StoreOptions{}},
		{name: "memory", opts: StoreOptions{Backend: BackendMemory}},
		{name: "badger in memory", opts: StoreOptions{Backend: BackendBadger}},
		{name: "redis without addr", opts: StoreOptions{Backend: BackendRedis}, wantErr: "redis address is required"},
		{name: "unknown", opts: StoreOptions{Backend: "sqlite"}, wantErr: `unknown favorites backend "sqlite"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store, closeFn, err := OpenStore(context.Background(), tt.opts)
			if closeFn == nil {
				t.Fatal("close function is nil")
			}
			defer closeFn()

			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("OpenStore() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("OpenStore() error = %v", err)
			}
			if store == nil {
				t.Fatal("OpenStore() returned nil store")
			}
		})
	}
}
