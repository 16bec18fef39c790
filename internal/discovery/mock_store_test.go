// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package discovery

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfinder/internal/models"
)

// rioCenter is roughly Praça Floriano. Distances from here:
// museu-do-amanha 1.4 km, pao-de-acucar 4.7 km, cristo-redentor 6.3 km,
// feira-hippie 9.0 km, pelourinho 1209 km, teatro-amazonas 2851 km.
var rioCenter = models.Coordinates{Latitude: -22.9068, Longitude: -43.1729}

// samplePoints is ordered by rating descending like a real store.
func samplePoints() []models.PointOfInterest {
	return []models.PointOfInterest{
		{
			ID: "cristo-redentor", Name: "Cristo Redentor",
			Description: "Art deco statue of Jesus Christ on Corcovado",
			Coordinates: models.Coordinates{Latitude: -22.9519, Longitude: -43.2105},
			Category:    models.CategoryMonument, Rating: 4.7, PriceRange: models.PriceMedium,
			Tags: []string{"landmark", "view", "religious"},
		},
		{
			ID: "pao-de-acucar", Name: "Pão de Açúcar",
			Description: "Granite peak reached by cable car",
			Coordinates: models.Coordinates{Latitude: -22.9485, Longitude: -43.1654},
			Category:    models.CategoryNature, Rating: 4.6, PriceRange: models.PriceHigh,
			Tags: []string{"cable-car", "view", "nature"},
		},
		{
			ID: "teatro-amazonas", Name: "Teatro Amazonas",
			Description: "Opera house in the middle of the rainforest",
			Coordinates: models.Coordinates{Latitude: -3.1305, Longitude: -60.0238},
			Category:    models.CategoryCultural, Rating: 4.5, PriceRange: models.PriceModerate,
			Tags: []string{"opera", "architecture", "history"},
		},
		{
			ID: "museu-do-amanha", Name: "Museu do Amanhã",
			Description: "Science museum designed by Santiago Calatrava",
			Coordinates: models.Coordinates{Latitude: -22.8955, Longitude: -43.1784},
			Category:    models.CategoryMuseum, Rating: 4.4, PriceRange: models.PriceLow,
			Tags: []string{"science", "architecture"},
		},
		{
			ID: "pelourinho", Name: "Pelourinho",
			Description: "Colonial historic centre of Salvador",
			Coordinates: models.Coordinates{Latitude: -12.9714, Longitude: -38.5124},
			Category:    models.CategoryHistoric, Rating: 4.3, PriceRange: models.PriceFree,
			Tags: []string{"history", "colonial", "unesco"},
		},
		{
			ID: "feira-hippie", Name: "Feira Hippie de Ipanema",
			Description: "Sunday craft market",
			Coordinates: models.Coordinates{Latitude: -22.9838, Longitude: -43.1986},
			Category:    models.CategoryShopping, Rating: 3.8, PriceRange: models.PriceLow,
			Tags: []string{"market", "crafts"},
		},
	}
}

// mockStore is a test double for CatalogStore.
type mockStore struct {
	mu     sync.Mutex
	points []models.PointOfInterest
	err    error

	calls        map[string]int
	lastLimit    int
	lastCategory models.Category
	lastIDs      []string
}

func newMockStore(points []models.PointOfInterest) *mockStore {
	return &mockStore{points: points, calls: make(map[string]int)}
}

func (m *mockStore) record(op string, limit int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[op]++
	m.lastLimit = limit
}

func (m *mockStore) callCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

func (m *mockStore) totalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		n += c
	}
	return n
}

func (m *mockStore) GetByID(_ context.Context, id string) (*models.PointOfInterest, error) {
	m.record("GetByID", 0)
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.points {
		if m.points[i].ID == id {
			p := m.points[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (m *mockStore) GetByIDs(_ context.Context, ids []string) ([]models.PointOfInterest, error) {
	m.record("GetByIDs", 0)
	m.mu.Lock()
	m.lastIDs = append([]string(nil), ids...)
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []models.PointOfInterest
	for _, p := range m.points {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockStore) GetByCategory(_ context.Context, category models.Category, limit int) ([]models.PointOfInterest, error) {
	m.record("GetByCategory", limit)
	m.mu.Lock()
	m.lastCategory = category
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []models.PointOfInterest
	for _, p := range m.points {
		if p.Category == category && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockStore) GetPopular(_ context.Context, limit int) ([]models.PointOfInterest, error) {
	m.record("GetPopular", limit)
	if m.err != nil {
		return nil, m.err
	}
	var out []models.PointOfInterest
	for _, p := range m.points {
		if p.Rating >= 4.0 && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockStore) GetAll(_ context.Context, limit int) ([]models.PointOfInterest, error) {
	m.record("GetAll", limit)
	if m.err != nil {
		return nil, m.err
	}
	if len(m.points) > limit {
		return append([]models.PointOfInterest(nil), m.points[:limit]...), nil
	}
	return append([]models.PointOfInterest(nil), m.points...), nil
}

func newTestEngine(t *testing.T, store CatalogStore) *Engine {
	t.Helper()
	e, err := NewEngine(store, DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func pointIDs(points []models.PointOfInterest) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.ID
	}
	return out
}

func assertIDs(t *testing.T, got []models.PointOfInterest, want ...string) {
	t.Helper()
	g := pointIDs(got)
	if len(g) != len(want) {
		t.Fatalf("ids = %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("ids = %v, want %v", g, want)
		}
	}
}
