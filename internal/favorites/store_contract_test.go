// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package favorites

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
)

// runStoreContract checks the behavior every Store must share.
func runStoreContract(t *testing.T, newStore func(t *testing.T) Store) {
	t.Helper()

	t.Run("empty user", func(t *testing.T) {
		s := newStore(t)
		ids, err := s.List(context.Background(), "nobody")
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if ids == nil || len(ids) != 0 {
			t.Errorf("List() = %#v, want empty non-nil slice", ids)
		}
		ok, err := s.Contains(context.Background(), "nobody", "p1")
		if err != nil || ok {
			t.Errorf("Contains() = %v, %v; want false, nil", ok, err)
		}
	})

	t.Run("add is idempotent", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		added, err := s.Add(ctx, "u1", "p1")
		if err != nil || !added {
			t.Fatalf("first Add() = %v, %v; want true, nil", added, err)
		}
		added, err = s.Add(ctx, "u1", "p1")
		if err != nil || added {
			t.Fatalf("second Add() = %v, %v; want false, nil", added, err)
		}
		ids, _ := s.List(ctx, "u1")
		if !slices.Equal(ids, []string{"p1"}) {
			t.Errorf("List() = %v, want [p1]", ids)
		}
	})

	t.Run("insertion order", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		for _, id := range []string{"zulu", "alpha", "mike"} {
			if _, err := s.Add(ctx, "u1", id); err != nil {
				t.Fatalf("Add(%s) error = %v", id, err)
			}
		}
		ids, err := s.List(ctx, "u1")
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if want := []string{"zulu", "alpha", "mike"}; !slices.Equal(ids, want) {
			t.Errorf("List() = %v, want %v", ids, want)
		}
	})

	t.Run("remove", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		_, _ = s.Add(ctx, "u1", "p1")
		_, _ = s.Add(ctx, "u1", "p2")

		removed, err := s.Remove(ctx, "u1", "p1")
		if err != nil || !removed {
			t.Fatalf("Remove() = %v, %v; want true, nil", removed, err)
		}
		removed, err = s.Remove(ctx, "u1", "p1")
		if err != nil || removed {
			t.Fatalf("second Remove() = %v, %v; want false, nil", removed, err)
		}
		if ok, _ := s.Contains(ctx, "u1", "p1"); ok {
			t.Error("Contains(p1) = true after remove")
		}
		if ok, _ := s.Contains(ctx, "u1", "p2"); !ok {
			t.Error("Contains(p2) = false, want true")
		}

		removed, err = s.Remove(ctx, "u1", "p2")
		if err != nil || !removed {
			t.Fatalf("Remove(p2) = %v, %v", removed, err)
		}
		ids, _ := s.List(ctx, "u1")
		if len(ids) != 0 {
			t.Errorf("List() = %v, want empty", ids)
		}
	})

	t.Run("toggle round trip", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		_, _ = s.Add(ctx, "u1", "p1")
		for i, want := range []bool{true, false, true} {
			got, err := s.Toggle(ctx, "u1", "p2")
			if err != nil || got != want {
				t.Fatalf("Toggle #%d = %v, %v; want %v, nil", i+1, got, err, want)
			}
		}
		ids, _ := s.List(ctx, "u1")
		if !slices.Equal(ids, []string{"p1", "p2"}) {
			t.Errorf("List() = %v, want [p1 p2]", ids)
		}
	})

	// Each successful toggle flips the state, so the final state follows
	// the parity of successes even when toggles race.
	t.Run("concurrent toggles", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		var (
			wg        sync.WaitGroup
			successes atomic.Int32
		)
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := s.Toggle(ctx, "u1", "p1"); err == nil {
					successes.Add(1)
				}
			}()
		}
		wg.Wait()

		n := successes.Load()
		if n == 0 {
			t.Fatal("every toggle failed")
		}
		ok, err := s.Contains(ctx, "u1", "p1")
		if err != nil {
			t.Fatalf("Contains() error = %v", err)
		}
		if want := n%2 == 1; ok != want {
			t.Errorf("after %d toggles Contains() = %v, want %v", n, ok, want)
		}
	})

	t.Run("users are isolated", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		_, _ = s.Add(ctx, "u1", "p1")
		_, _ = s.Add(ctx, "u2", "p2")

		if ok, _ := s.Contains(ctx, "u2", "p1"); ok {
			t.Error("u2 sees u1's favorite")
		}
		ids, _ := s.List(ctx, "u2")
		if !slices.Equal(ids, []string{"p2"}) {
			t.Errorf("List(u2) = %v, want [p2]", ids)
		}
	})
}
