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

func TestNearby(t *testing.T) {
	t.Parallel()

	cristo := models.Coordinates{Latitude: -22.9519, Longitude: -43.2105}

	tests := []struct {
		name    string
		params  models.NearbyParams
		wantIDs []string
	}{
		{
			name:    "default radius",
			params:  models.NearbyParams{Location: &rioCenter},
			wantIDs: []string{"museu-do-amanha", "pao-de-acucar", "cristo-redentor", "feira-hippie"},
		},
		{
			name:    "radius and limit",
			params:  models.NearbyParams{Location: &rioCenter, RadiusKm: models.Float(5), Limit: models.Int(1)},
			wantIDs: []string{"museu-do-amanha"},
		},
		{
			name:    "zero radius matches the exact location",
			params:  models.NearbyParams{Location: &cristo, RadiusKm: models.Float(0)},
			wantIDs: []string{"cristo-redentor"},
		},
		{
			name:    "country wide radius",
			params:  models.NearbyParams{Location: &rioCenter, RadiusKm: models.Float(1500)},
			wantIDs: []string{"museu-do-amanha", "pao-de-acucar", "cristo-redentor", "feira-hippie", "pelourinho"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := newMockStore(samplePoints())
			e := newTestEngine(t, store)

			got, err := e.Nearby(context.Background(), tt.params)
			if err != nil {
				t.Fatalf("Nearby: %v", err)
			}
			if store.callCount("GetAll") != 1 || store.lastLimit != 100 {
				t.Errorf("expected GetAll(100), calls=%v limit=%d", store.calls, store.lastLimit)
			}
			assertIDs(t, got, tt.wantIDs...)
		})
	}
}

func TestNearby_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params models.NearbyParams
		want   string
	}{
		{"missing location", models.NearbyParams{}, MsgLocationRequired},
		{"latitude", models.NearbyParams{Location: &models.Coordinates{Latitude: 100}}, models.MsgLatitudeRange},
		{"negative radius", models.NearbyParams{Location: &rioCenter, RadiusKm: models.Float(-1)}, MsgRadiusNegative},
		{"limit", models.NearbyParams{Location: &rioCenter, Limit: models.Int(0)}, MsgLimitRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := newMockStore(samplePoints())
			e := newTestEngine(t, store)

			_, err := e.Nearby(context.Background(), tt.params)
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Message != tt.want {
				t.Fatalf("error = %v, want %q", err, tt.want)
			}
			if store.totalCalls() != 0 {
				t.Error("store was called for invalid input")
			}
		})
	}
}

func TestNearby_StoreFailure(t *testing.T) {
	t.Parallel()

	store := newMockStore(nil)
	store.err = errors.New("i/o timeout")
	e := newTestEngine(t, store)

	_, err := e.Nearby(context.Background(), models.NearbyParams{Location: &rioCenter})
	if !errors.Is(err, ErrNearbyFailed) || err.Error() != "failed to get nearby points" {
		t.Fatalf("error = %v", err)
	}
}
