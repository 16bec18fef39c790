// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/wayfinder/internal/models"
)

func TestRateLimited_AllowsBurst(t *testing.T) {
	t.Parallel()

	stub := newStubStore()
	r := NewRateLimited(stub, 1000, 5)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := r.GetAll(ctx, 1); err != nil {
			t.Fatalf("call %d error = %v", i, err)
		}
	}
	if stub.calls.Load() != 5 {
		t.Errorf("calls = %d, want 5", stub.calls.Load())
	}
}

func TestRateLimited_WaitHonorsContext(t *testing.T) {
	t.Parallel()

	stub := newStubStore()
	r := NewRateLimited(stub, 0.001, 1)

	if _, err := r.GetByID(context.Background(), "alpha"); err != nil {
		t.Fatalf("first call error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := r.GetPopular(ctx, 5); err == nil {
		t.Fatal("expected rate limit error once the bucket is empty")
	}

	canceled, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	if _, err := r.GetByIDs(canceled, []string{"alpha"}); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if _, err := r.GetByCategory(canceled, models.CategoryNature, 1); err == nil {
		t.Error("expected error for canceled context")
	}

	if stub.calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", stub.calls.Load())
	}

	if err := r.Upsert(context.Background(), fixturePoint("hotel", models.CategoryHotels, 3.9)); err != nil {
		t.Errorf("Upsert() should bypass the limiter, got %v", err)
	}
}

func TestNewRateLimited_MinimumBurst(t *testing.T) {
	t.Parallel()

	r := NewRateLimited(newStubStore(), 10, 0)
	if r.limiter.Burst() != 1 {
		t.Errorf("Burst() = %d, want 1", r.limiter.Burst())
	}
}
