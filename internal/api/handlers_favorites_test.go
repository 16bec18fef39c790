// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfinder/internal/discovery"
	"github.com/tomtom215/wayfinder/internal/favorites"
)

func TestManageFavorite_Routes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method     string
		target     string
		wantAction favorites.Action
	}{
		{method: http.MethodPut, target: "/api/v1/users/u1/favorites/masp", wantAction: favorites.ActionAdd},
		{method: http.MethodDelete, target: "/api/v1/users/u1/favorites/masp", wantAction: favorites.ActionRemove},
		{method: http.MethodPost, target: "/api/v1/users/u1/favorites/masp/toggle", wantAction: favorites.ActionToggle},
	}

	for _, tt := range tests {
		t.Run(string(tt.wantAction), func(t *testing.T) {
			t.Parallel()

			favs := &mockFavorites{}
			router := newTestRouter(t, &mockDiscovery{}, favs, HandlerOptions{})

			rec, env := doRequest(t, router, tt.method, tt.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}

			want := favorites.Params{UserID: "u1", PointID: "masp", Action: tt.wantAction}
			if favs.lastParams != want {
				t.Errorf("Execute params = %+v, want %+v", favs.lastParams, want)
			}

			var result favorites.Result
			if err := json.Unmarshal(env.Data, &result); err != nil {
				t.Fatalf("decode result: %v", err)
			}
			if result.Action != tt.wantAction || result.PointID != "masp" {
				t.Errorf("result = %+v", result)
			}
		})
	}
}

func TestFavorites_Reads(t *testing.T) {
	t.Parallel()

	favs := &mockFavorites{ids: []string{"b", "a"}, points: samplePoints()[:2]}
	router := newTestRouter(t, &mockDiscovery{}, favs, HandlerOptions{})

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/users/u7/favorites/ids")
	if rec.Code != http.StatusOK {
		t.Fatalf("ids status = %d", rec.Code)
	}
	var ids []string
	if err := json.Unmarshal(env.Data, &ids); err != nil {
		t.Fatalf("decode ids: %v", err)
	}
	if !reflect.DeepEqual(ids, []string{"b", "a"}) || favs.lastUser != "u7" {
		t.Errorf("ids = %v user = %q", ids, favs.lastUser)
	}

	rec, env = doRequest(t, router, http.MethodGet, "/api/v1/users/u7/favorites")
	if rec.Code != http.StatusOK || len(decodePoints(t, env)) != 2 {
		t.Fatalf("list status = %d", rec.Code)
	}

	for pointID, want := range map[string]bool{"a": true, "zzz": false} {
		rec, env = doRequest(t, router, http.MethodGet, "/api/v1/users/u7/favorites/"+pointID)
		if rec.Code != http.StatusOK {
			t.Fatalf("status %s = %d", pointID, rec.Code)
		}
		var st favoriteStatus
		if err := json.Unmarshal(env.Data, &st); err != nil {
			t.Fatalf("decode status: %v", err)
		}
		if st.Favorite != want || st.PointID != pointID {
			t.Errorf("status %s = %+v, want favorite=%v", pointID, st, want)
		}
	}
}

func TestFavorites_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation",
			err:        &discovery.ValidationError{Field: "UserID", Message: favorites.MsgUserIDRequired},
			wantStatus: http.StatusBadRequest,
			wantMsg:    favorites.MsgUserIDRequired,
		},
		{
			name:       "store",
			err:        discovery.NewRepositoryError(favorites.ErrManageFailed, errStoreDown),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "failed to manage favorites",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := newTestRouter(t, &mockDiscovery{}, &mockFavorites{err: tt.err}, HandlerOptions{})
			for _, req := range []struct{ method, target string }{
				{http.MethodPut, "/api/v1/users/u1/favorites/p1"},
				{http.MethodGet, "/api/v1/users/u1/favorites"},
				{http.MethodGet, "/api/v1/users/u1/favorites/ids"},
				{http.MethodGet, "/api/v1/users/u1/favorites/p1"},
			} {
				rec, env := doRequest(t, router, req.method, req.target)
				if rec.Code != tt.wantStatus {
					t.Errorf("%s %s: status = %d, want %d", req.method, req.target, rec.Code, tt.wantStatus)
					continue
				}
				if env.Error == nil || env.Error.Message != tt.wantMsg {
					t.Errorf("%s %s: error = %+v", req.method, req.target, env.Error)
				}
			}
		})
	}
}

func TestFavorites_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, &mockDiscovery{}, &mockFavorites{}, HandlerOptions{})
	rec, env := doRequest(t, router, http.MethodPatch, "/api/v1/users/u1/favorites/p1")

	if rec.Code != http.StatusMethodNotAllowed || env.Error == nil || env.Error.Code != ErrCodeMethodNotAllowed {
		t.Errorf("status = %d, error = %+v", rec.Code, env.Error)
	}
}
