// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/wayfinder/internal/favorites"
)

// favoriteStatus is the payload of GET /users/{userID}/favorites/{pointID}.
type favoriteStatus struct {
	UserID   string `json:"user_id"`
	PointID  string `json:"point_id"`
	Favorite bool   `json:"favorite"`
}

// ListFavorites handles GET /api/v1/users/{userID}/favorites.
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	points, err := h.favorites.Favorites(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.writeError(rw, r, err)
		return
	}
	rw.Success(points)
}

// FavoriteIDs handles GET /api/v1/users/{userID}/favorites/ids.
func (h *Handler) FavoriteIDs(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ids, err := h.favorites.IDs(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.writeError(rw, r, err)
		return
	}
	rw.Success(ids)
}

// FavoriteStatus handles GET /api/v1/users/{userID}/favorites/{pointID}.
func (h *Handler) FavoriteStatus(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID, pointID := chi.URLParam(r, "userID"), chi.URLParam(r, "pointID")

	ok, err := h.favorites.IsFavorite(r.Context(), userID, pointID)
	if err != nil {
		h.writeError(rw, r, err)
		return
	}
	rw.Success(favoriteStatus{UserID: userID, PointID: pointID, Favorite: ok})
}

// AddFavorite handles PUT /api/v1/users/{userID}/favorites/{pointID}.
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	h.manageFavorite(w, r, favorites.ActionAdd)
}

// RemoveFavorite handles DELETE /api/v1/users/{userID}/favorites/{pointID}.
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	h.manageFavorite(w, r, favorites.ActionRemove)
}

// ToggleFavorite handles POST /api/v1/users/{userID}/favorites/{pointID}/toggle.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	h.manageFavorite(w, r, favorites.ActionToggle)
}

func (h *Handler) manageFavorite(w http.ResponseWriter, r *http.Request, action favorites.Action) {
	rw := NewResponseWriter(w, r)

	result, err := h.favorites.Execute(r.Context(), favorites.Params{
		UserID:  chi.URLParam(r, "userID"),
		PointID: chi.URLParam(r, "pointID"),
		Action:  action,
	})
	if err != nil {
		h.writeError(rw, r, err)
		return
	}
	rw.Success(result)
}
