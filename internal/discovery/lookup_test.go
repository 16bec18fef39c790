// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package discovery

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/wayfinder/internal/models"
)

func TestPoint(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, newMockStore(samplePoints()))
	ctx := context.Background()

	p, err := e.Point(ctx, " pelourinho ")
	if err != nil || p == nil || p.ID != "pelourinho" {
		t.Fatalf("Point(pelourinho) = %v, %v", p, err)
	}

	p, err = e.Point(ctx, "atlantis")
	if err != nil || p != nil {
		t.Fatalf("missing point should be nil, nil; got %v, %v", p, err)
	}

	_, err = e.Point(ctx, "  ")
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Message != models.MsgPointIDRequired {
		t.Fatalf("blank id error = %v", err)
	}
}

func TestPoint_StoreFailure(t *testing.T) {
	t.Parallel()

	store := newMockStore(nil)
	store.err = errors.New("boom")
	e := newTestEngine(t, store)

	_, err := e.Point(context.Background(), "x")
	if !errors.Is(err, ErrLookupFailed) || err.Error() != "failed to get points of interest" {
		t.Fatalf("error = %v", err)
	}
}

func TestPoints_PreservesOrder(t *testing.T) {
	t.Parallel()

	store := newMockStore(samplePoints())
	e := newTestEngine(t, store)

	got, err := e.Points(context.Background(), []string{"pelourinho", "missing", "cristo-redentor", "pelourinho", " "})
	if err != nil {
		t.Fatalf("Points: %v", err)
	}
	assertIDs(t, got, "pelourinho", "cristo-redentor")

	if want := []string{"pelourinho", "missing", "cristo-redentor"}; len(store.lastIDs) != len(want) {
		t.Errorf("store ids = %v, want %v", store.lastIDs, want)
	}
}

func TestPoints_EmptySkipsStore(t *testing.T) {
	t.Parallel()

	store := newMockStore(samplePoints())
	e := newTestEngine(t, store)

	got, err := e.Points(context.Background(), []string{"", " "})
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("Points(blank) = %v, %v", got, err)
	}
	if store.totalCalls() != 0 {
		t.Error("store should not be called without ids")
	}
}

func TestByCategory(t *testing.T) {
	t.Parallel()

	store := newMockStore(samplePoints())
	e := newTestEngine(t, store)
	ctx := context.Background()

	got, err := e.ByCategory(ctx, models.CategoryNature, nil)
	if err != nil {
		t.Fatalf("ByCategory: %v", err)
	}
	assertIDs(t, got, "pao-de-acucar")
	if store.lastLimit != 20 {
		t.Errorf("default limit = %d, want 20", store.lastLimit)
	}

	_, err = e.ByCategory(ctx, "spaceport", nil)
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Message != MsgCategoryUnknown {
		t.Errorf("unknown category error = %v", err)
	}

	_, err = e.ByCategory(ctx, models.CategoryNature, models.Int(101))
	if !errors.As(err, &ve) || ve.Message != MsgLimitRange {
		t.Errorf("limit error = %v", err)
	}
}

func TestPopular(t *testing.T) {
	t.Parallel()

	store := newMockStore(samplePoints())
	e := newTestEngine(t, store)

	got, err := e.Popular(context.Background(), models.Int(3))
	if err != nil {
		t.Fatalf("Popular: %v", err)
	}
	assertIDs(t, got, "cristo-redentor", "pao-de-acucar", "teatro-amazonas")

	if s := e.Stats(); s.Lookups != 1 {
		t.Errorf("Lookups = %d, want 1", s.Lookups)
	}
}
