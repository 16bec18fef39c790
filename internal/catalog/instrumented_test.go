// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/wayfinder/internal/metrics"
	"github.com/tomtom215/wayfinder/internal/models"
)

func TestInstrumented_RecordsErrors(t *testing.T) {
	t.Parallel()

	const backend = "test-instrumented"
	stub := newStubStore()
	s := Instrument(backend, stub)
	ctx := context.Background()

	if s.Backend() != backend {
		t.Errorf("Backend() = %q", s.Backend())
	}

	if _, err := s.GetAll(ctx, 10); err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if got := testutil.ToFloat64(metrics.CatalogStoreErrors.WithLabelValues(backend, "get_all")); got != 0 {
		t.Errorf("errors after success = %v, want 0", got)
	}

	stub.setErr(errBackend)
	calls := []func() error{
		func() error { _, err := s.GetByID(ctx, "alpha"); return err },
		func() error { _, err := s.GetByIDs(ctx, []string{"alpha"}); return err },
		func() error { _, err := s.GetByCategory(ctx, models.CategoryNature, 1); return err },
		func() error { _, err := s.GetPopular(ctx, 1); return err },
		func() error { _, err := s.GetAll(ctx, 1); return err },
		func() error { return s.Upsert(ctx, fixturePoint("india", models.CategoryNature, 1)) },
	}
	for i, call := range calls {
		if err := call(); !errors.Is(err, errBackend) {
			t.Errorf("call %d error = %v, want backend error", i, err)
		}
	}

	for _, op := range []string{"get_by_id", "get_by_ids", "get_by_category", "get_popular", "get_all", "upsert"} {
		if got := testutil.ToFloat64(metrics.CatalogStoreErrors.WithLabelValues(backend, op)); got != 1 {
			t.Errorf("errors[%s] = %v, want 1", op, got)
		}
	}
}
