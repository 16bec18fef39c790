// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfinder/internal/discovery"
	"github.com/tomtom215/wayfinder/internal/favorites"
	"github.com/tomtom215/wayfinder/internal/models"
)

var errStoreDown = errors.New("connection refused")

// mockDiscovery records the last request of each kind and returns canned
// results. A non-nil err is returned from every call.
type mockDiscovery struct {
	mu sync.Mutex

	points []models.PointOfInterest
	err    error

	lastSearch    models.SearchQuery
	lastRecommend models.RecommendationParams
	lastNearby    models.NearbyParams
	lastCategory  models.Category
	lastLimit     *int
	lastID        string
}

func (m *mockDiscovery) Search(_ context.Context, q models.SearchQuery) (*models.SearchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSearch = q
	if m.err != nil {
		return nil, m.err
	}
	res := discovery.Paginate(m.points, *q.Offset, *q.Limit)
	return &res, nil
}

func (m *mockDiscovery) Recommend(_ context.Context, p models.RecommendationParams) ([]models.PointOfInterest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastRecommend = p
	return m.points, m.err
}

func (m *mockDiscovery) Nearby(_ context.Context, p models.NearbyParams) ([]models.PointOfInterest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastNearby = p
	return m.points, m.err
}

func (m *mockDiscovery) Point(_ context.Context, id string) (*models.PointOfInterest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastID = id
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

func (m *mockDiscovery) ByCategory(_ context.Context, category models.Category, limit *int) ([]models.PointOfInterest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastCategory = category
	m.lastLimit = limit
	return m.points, m.err
}

func (m *mockDiscovery) Popular(_ context.Context, limit *int) ([]models.PointOfInterest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastLimit = limit
	return m.points, m.err
}

func (m *mockDiscovery) Stats() discovery.Stats {
	return discovery.Stats{Searches: 7}
}

// mockFavorites returns canned results and records the last Execute params.
type mockFavorites struct {
	mu sync.Mutex

	ids    []string
	points []models.PointOfInterest
	err    error

	lastParams favorites.Params
	lastUser   string
}

func (m *mockFavorites) Execute(_ context.Context, p favorites.Params) (*favorites.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastParams = p
	if m.err != nil {
		return nil, m.err
	}
	return &favorites.Result{
		UserID:   p.UserID,
		PointID:  p.PointID,
		Action:   p.Action,
		Favorite: p.Action != favorites.ActionRemove,
		Changed:  true,
	}, nil
}

func (m *mockFavorites) IsFavorite(_ context.Context, userID, pointID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastUser = userID
	if m.err != nil {
		return false, m.err
	}
	for _, id := range m.ids {
		if id == pointID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockFavorites) IDs(_ context.Context, userID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastUser = userID
	return m.ids, m.err
}

func (m *mockFavorites) Favorites(_ context.Context, userID string) ([]models.PointOfInterest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastUser = userID
	return m.points, m.err
}

// envelope mirrors APIResponse with a raw data payload for decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func newTestRouter(t *testing.T, disc Discovery, favs Favorites, opts HandlerOptions) http.Handler {
	t.Helper()

	h, err := NewHandler(disc, favs, opts, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return NewRouter(h, NewChiMiddleware(cfg)).SetupChi()
}

func doRequest(t *testing.T, h http.Handler, method, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s %s: %v (body %q)", method, target, err, rec.Body.String())
	}
	return rec, env
}

func samplePoints() []models.PointOfInterest {
	return []models.PointOfInterest{
		{ID: "a", Name: "Alpha", Category: models.CategoryMuseum, Rating: 4.9, Tags: []string{}},
		{ID: "b", Name: "Bravo", Category: models.CategoryNature, Rating: 4.5, Tags: []string{}},
		{ID: "c", Name: "Charlie", Category: models.CategoryNature, Rating: 4.1, Tags: []string{}},
	}
}
