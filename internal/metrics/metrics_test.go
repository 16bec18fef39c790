// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func histogramCount(t *testing.T, observer interface{ Write(*dto.Metric) error }) uint64 {
	t.Helper()
	var m dto.Metric
	if err := observer.Write(&m); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/points/search", "200"))

	RecordAPIRequest("GET", "/api/v1/points/search", "200", 12*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/points/search", "200"))
	if after-before != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

func TestRecordDiscovery(t *testing.T) {
	results := DiscoveryResults.WithLabelValues("nearby").(interface{ Write(*dto.Metric) error })
	beforeResults := histogramCount(t, results)
	beforeOK := testutil.ToFloat64(DiscoveryOperations.WithLabelValues("nearby", "success"))
	beforeInvalid := testutil.ToFloat64(DiscoveryOperations.WithLabelValues("nearby", "invalid"))

	RecordDiscovery("nearby", "success", time.Millisecond, 7)
	RecordDiscovery("nearby", "invalid", time.Millisecond, 0)

	if d := testutil.ToFloat64(DiscoveryOperations.WithLabelValues("nearby", "success")) - beforeOK; d != 1 {
		t.Errorf("success delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(DiscoveryOperations.WithLabelValues("nearby", "invalid")) - beforeInvalid; d != 1 {
		t.Errorf("invalid delta = %v, want 1", d)
	}
	if d := histogramCount(t, results) - beforeResults; d != 1 {
		t.Errorf("results observations delta = %v, want 1 (only successes)", d)
	}
}

func TestRecordCatalogCall(t *testing.T) {
	before := testutil.ToFloat64(CatalogStoreErrors.WithLabelValues("memory", "get_all"))

	RecordCatalogCall("memory", "get_all", time.Millisecond, nil)
	RecordCatalogCall("memory", "get_all", time.Millisecond, errors.New("boom"))

	if d := testutil.ToFloat64(CatalogStoreErrors.WithLabelValues("memory", "get_all")) - before; d != 1 {
		t.Errorf("errors delta = %v, want 1", d)
	}
}

func TestRecordFavoriteAndEvents(t *testing.T) {
	okBefore := testutil.ToFloat64(FavoritesOperations.WithLabelValues("toggle", "success"))
	errBefore := testutil.ToFloat64(FavoritesOperations.WithLabelValues("toggle", "error"))

	RecordFavorite("toggle", nil)
	RecordFavorite("toggle", errors.New("store down"))

	if d := testutil.ToFloat64(FavoritesOperations.WithLabelValues("toggle", "success")) - okBefore; d != 1 {
		t.Errorf("favorites success delta = %v", d)
	}
	if d := testutil.ToFloat64(FavoritesOperations.WithLabelValues("toggle", "error")) - errBefore; d != 1 {
		t.Errorf("favorites error delta = %v", d)
	}

	pubBefore := testutil.ToFloat64(EventsPublished.WithLabelValues("favorites.changed", "success"))
	conBefore := testutil.ToFloat64(EventsConsumed.WithLabelValues("favorites.changed"))

	RecordEventPublished("favorites.changed", nil)
	RecordEventConsumed("favorites.changed")

	if d := testutil.ToFloat64(EventsPublished.WithLabelValues("favorites.changed", "success")) - pubBefore; d != 1 {
		t.Errorf("published delta = %v", d)
	}
	if d := testutil.ToFloat64(EventsConsumed.WithLabelValues("favorites.changed")) - conBefore; d != 1 {
		t.Errorf("consumed delta = %v", d)
	}
}
