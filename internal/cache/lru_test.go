// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package cache

import (
	"strconv"
	"sync"
	"testing"
	"time"
)

// fakeClock lets tests move time without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestLRU(capacity int, ttl time.Duration) (*LRU[string], *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewLRU[string](capacity, ttl)
	c.now = clock.Now
	return c, clock
}

func TestNewLRU_Defaults(t *testing.T) {
	t.Parallel()

	c := NewLRU[int](0, 0)
	if c.capacity != DefaultCapacity || c.ttl != DefaultTTL {
		t.Errorf("capacity/ttl = %d/%v", c.capacity, c.ttl)
	}
}

func TestLRU_GetAdd(t *testing.T) {
	t.Parallel()

	c, _ := newTestLRU(3, time.Minute)
	c.Add("a", "1")
	c.Add("b", "2")

	if v, ok := c.Get("a"); !ok || v != "1" {
		t.Errorf("Get(a) = %q, %v", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) should miss")
	}

	c.Add("a", "updated")
	if v, _ := c.Get("a"); v != "updated" {
		t.Errorf("Get(a) after update = %q", v)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c, _ := newTestLRU(3, time.Minute)
	c.Add("a", "1")
	c.Add("b", "2")
	c.Add("c", "3")
	c.Get("a")
	c.Add("d", "4")

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s should be present", k)
		}
	}
}

func TestLRU_TTL(t *testing.T) {
	t.Parallel()

	c, clock := newTestLRU(10, time.Minute)
	c.Add("a", "1")
	c.Add("b", "2")

	clock.Advance(30 * time.Second)
	c.Add("b", "refreshed")

	clock.Advance(45 * time.Second)
	if _, ok := c.Get("a"); ok {
		t.Error("a should have expired")
	}
	if v, ok := c.Get("b"); !ok || v != "refreshed" {
		t.Errorf("Get(b) = %q, %v; re-adding should reset TTL", v, ok)
	}
}

func TestLRU_CleanupExpired(t *testing.T) {
	t.Parallel()

	c, clock := newTestLRU(10, time.Minute)
	c.Add("a", "1")
	c.Add("b", "2")
	clock.Advance(2 * time.Minute)
	c.Add("c", "3")

	if n := c.CleanupExpired(); n != 2 {
		t.Errorf("CleanupExpired() = %d, want 2", n)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestLRU_RemoveClearStats(t *testing.T) {
	t.Parallel()

	c, _ := newTestLRU(10, time.Minute)
	c.Add("a", "1")
	c.Add("b", "2")

	if !c.Remove("a") || c.Remove("a") {
		t.Error("Remove(a) should succeed once")
	}

	c.Get("b")
	c.Get("a")
	if s := c.Stats(); s.Hits != 1 || s.Misses != 1 || s.Size != 1 {
		t.Errorf("Stats() = %+v", s)
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
	c.Add("z", "26")
	if _, ok := c.Get("z"); !ok {
		t.Error("cache unusable after Clear")
	}
}

func TestLRU_Concurrent(t *testing.T) {
	t.Parallel()

	c := NewLRU[int](100, time.Minute)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 500 {
				k := strconv.Itoa((g*500 + i) % 250)
				c.Add(k, i)
				c.Get(k)
				if i%7 == 0 {
					c.Remove(k)
				}
			}
		}()
	}
	wg.Wait()

	if c.Len() > 100 {
		t.Errorf("Len() = %d exceeds capacity", c.Len())
	}
}
