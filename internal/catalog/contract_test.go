// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	"context"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/tomtom215/wayfinder/internal/models"
)

var fixtureTime = time.Date(2025, time.March, 1, 9, 30, 0, 0, time.UTC)

func fixturePoint(id string, category models.Category, rating float64) models.PointOfInterest {
	return models.PointOfInterest{
		ID:          id,
		Name:        "Point " + id,
		Description: "Fixture point " + id,
		Coordinates: models.Coordinates{Latitude: -22.9, Longitude: -43.2},
		Category:    category,
		Rating:      rating,
		PriceRange:  models.PriceLow,
		Tags:        []string{"fixture", id},
		Metadata:    models.Metadata{CreatedAt: fixtureTime, UpdatedAt: fixtureTime},
	}
}

// fixturePoints in catalog order: delta, alpha, bravo, echo, charlie.
func fixturePoints() []models.PointOfInterest {
	rich := fixturePoint("alpha", models.CategoryNature, 4.5)
	rich.Address = "Av. Atlântica, 1"
	rich.Images = []string{"https://example.com/alpha.jpg", "https://example.com/alpha-2.jpg"}
	rich.ContactInfo = &models.ContactInfo{Phone: "+55 21 5555-0000", Website: "https://example.com"}
	rich.OperatingHours = map[string]string{"monday": "08:00-18:00"}

	return []models.PointOfInterest{
		rich,
		fixturePoint("bravo", models.CategoryMuseum, 4.5),
		fixturePoint("charlie", models.CategoryNature, 3.2),
		fixturePoint("delta", models.CategoryMonument, 4.9),
		fixturePoint("echo", models.CategoryNature, 4.0),
	}
}

func ids(points []models.PointOfInterest) []string {
	out := make([]string, len(points))
	for i := range points {
		out[i] = points[i].ID
	}
	return out
}

func wantIDs(t *testing.T, got []models.PointOfInterest, want ...string) {
	t.Helper()
	if got == nil {
		t.Fatal("got nil slice, want non-nil")
	}
	if g := ids(got); !slices.Equal(g, want) {
		t.Errorf("ids = %v, want %v", g, want)
	}
}

// runStoreContract exercises the behavior every backend shares. newStore
// must return an empty store.
func runStoreContract(t *testing.T, newStore func(t *testing.T) Store) {
	t.Helper()

	seeded := func(t *testing.T) Store {
		t.Helper()
		s := newStore(t)
		if err := s.Upsert(context.Background(), fixturePoints()...); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
		return s
	}

	t.Run("GetByID", func(t *testing.T) {
		s := seeded(t)
		ctx := context.Background()

		p, err := s.GetByID(ctx, "alpha")
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if p == nil {
			t.Fatal("GetByID() = nil, want alpha")
		}
		if p.Name != "Point alpha" || p.Rating != 4.5 || p.Category != models.CategoryNature {
			t.Errorf("GetByID() = %+v", p)
		}
		if p.PriceRange != models.PriceLow || p.Address != "Av. Atlântica, 1" {
			t.Errorf("price/address = %q/%q", p.PriceRange, p.Address)
		}
		if p.Coordinates.Latitude != -22.9 || p.Coordinates.Longitude != -43.2 {
			t.Errorf("coordinates = %v", p.Coordinates)
		}
		if !slices.Equal(p.Tags, []string{"fixture", "alpha"}) {
			t.Errorf("tags = %v", p.Tags)
		}
		if p.PrimaryImage() != "https://example.com/alpha.jpg" || len(p.Images) != 2 {
			t.Errorf("images = %v", p.Images)
		}
		if p.ContactInfo == nil || p.ContactInfo.Phone != "+55 21 5555-0000" {
			t.Errorf("contact = %+v", p.ContactInfo)
		}
		if p.OperatingHours["monday"] != "08:00-18:00" {
			t.Errorf("hours = %v", p.OperatingHours)
		}
		if !p.Metadata.CreatedAt.Equal(fixtureTime) || !p.Metadata.UpdatedAt.Equal(fixtureTime) {
			t.Errorf("metadata = %+v", p.Metadata)
		}
	})

	t.Run("GetByID missing", func(t *testing.T) {
		s := seeded(t)
		p, err := s.GetByID(context.Background(), "missing")
		if err != nil || p != nil {
			t.Errorf("GetByID(missing) = %v, %v; want nil, nil", p, err)
		}
	})

	t.Run("GetByIDs", func(t *testing.T) {
		s := seeded(t)
		got, err := s.GetByIDs(context.Background(), []string{"charlie", "missing", "alpha", "delta"})
		if err != nil {
			t.Fatalf("GetByIDs() error = %v", err)
		}
		wantIDs(t, got, "delta", "alpha", "charlie")
	})

	t.Run("GetByIDs across batches", func(t *testing.T) {
		s := seeded(t)
		lookup := make([]string, 0, 3*BatchSize)
		for i := 0; i < 3*BatchSize-2; i++ {
			lookup = append(lookup, fmt.Sprintf("unknown-%02d", i))
		}
		lookup = append(lookup, "echo", "bravo")

		got, err := s.GetByIDs(context.Background(), lookup)
		if err != nil {
			t.Fatalf("GetByIDs() error = %v", err)
		}
		wantIDs(t, got, "bravo", "echo")
	})

	t.Run("GetByIDs empty", func(t *testing.T) {
		s := seeded(t)
		got, err := s.GetByIDs(context.Background(), nil)
		if err != nil {
			t.Fatalf("GetByIDs() error = %v", err)
		}
		wantIDs(t, got)
	})

	t.Run("GetByCategory", func(t *testing.T) {
		s := seeded(t)
		ctx := context.Background()

		got, err := s.GetByCategory(ctx, models.CategoryNature, 10)
		if err != nil {
			t.Fatalf("GetByCategory() error = %v", err)
		}
		wantIDs(t, got, "alpha", "echo", "charlie")

		got, err = s.GetByCategory(ctx, models.CategoryNature, 2)
		if err != nil {
			t.Fatalf("GetByCategory() error = %v", err)
		}
		wantIDs(t, got, "alpha", "echo")

		got, err = s.GetByCategory(ctx, models.CategoryHotels, 10)
		if err != nil {
			t.Fatalf("GetByCategory() error = %v", err)
		}
		wantIDs(t, got)
	})

	t.Run("GetPopular", func(t *testing.T) {
		s := seeded(t)
		got, err := s.GetPopular(context.Background(), 10)
		if err != nil {
			t.Fatalf("GetPopular() error = %v", err)
		}
		wantIDs(t, got, "delta", "alpha", "bravo", "echo")
	})

	t.Run("GetAll", func(t *testing.T) {
		s := seeded(t)
		ctx := context.Background()

		got, err := s.GetAll(ctx, 100)
		if err != nil {
			t.Fatalf("GetAll() error = %v", err)
		}
		wantIDs(t, got, "delta", "alpha", "bravo", "echo", "charlie")

		got, err = s.GetAll(ctx, 3)
		if err != nil {
			t.Fatalf("GetAll() error = %v", err)
		}
		wantIDs(t, got, "delta", "alpha", "bravo")

		got, err = s.GetAll(ctx, 0)
		if err != nil {
			t.Fatalf("GetAll(0) error = %v", err)
		}
		wantIDs(t, got)
	})

	t.Run("Upsert replaces", func(t *testing.T) {
		s := seeded(t)
		ctx := context.Background()

		updated := fixturePoint("alpha", models.CategoryNature, 2.0)
		updated.Name = "Alpha Renamed"
		if err := s.Upsert(ctx, updated); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}

		p, err := s.GetByID(ctx, "alpha")
		if err != nil || p == nil {
			t.Fatalf("GetByID() = %v, %v", p, err)
		}
		if p.Name != "Alpha Renamed" || p.Rating != 2.0 {
			t.Errorf("after upsert = %+v", p)
		}

		got, err := s.GetAll(ctx, 100)
		if err != nil {
			t.Fatalf("GetAll() error = %v", err)
		}
		wantIDs(t, got, "delta", "bravo", "echo", "charlie", "alpha")
	})

	t.Run("Upsert duplicate ids keeps last", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		first := fixturePoint("golf", models.CategoryMuseum, 3.0)
		second := fixturePoint("golf", models.CategoryMuseum, 4.2)
		if err := s.Upsert(ctx, first, second); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
		p, err := s.GetByID(ctx, "golf")
		if err != nil || p == nil {
			t.Fatalf("GetByID() = %v, %v", p, err)
		}
		if p.Rating != 4.2 {
			t.Errorf("rating = %v, want 4.2", p.Rating)
		}
	})
}
