// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/wayfinder/internal/discovery"
	"github.com/tomtom215/wayfinder/internal/models"
)

// SearchPoints handles GET /api/v1/points/search.
func (h *Handler) SearchPoints(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	q, err := parseSearchQuery(r.URL.Query())
	if err != nil {
		h.writeError(rw, r, err)
		return
	}
	if q.Limit == nil {
		q.Limit = models.Int(h.defaultPageSize)
	}
	if q.Offset == nil {
		q.Offset = models.Int(0)
	}

	result, err := h.discovery.Search(r.Context(), q)
	if err != nil {
		h.writeError(rw, r, err)
		return
	}

	rw.SuccessWithPagination(result.Points, &PaginationMeta{
		Total:   result.Total,
		Count:   len(result.Points),
		Offset:  *q.Offset,
		Limit:   *q.Limit,
		HasMore: result.HasMore,
	})
}

// Recommendations handles GET /api/v1/points/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	params, err := parseRecommendationParams(r.URL.Query())
	if err != nil {
		h.writeError(rw, r, err)
		return
	}

	points, err := h.discovery.Recommend(r.Context(), params)
	if err != nil {
		h.writeError(rw, r, err)
		return
	}
	rw.Success(points)
}

// NearbyPoints handles GET /api/v1/points/nearby.
func (h *Handler) NearbyPoints(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	params, err := parseNearbyParams(r.URL.Query())
	if err != nil {
		h.writeError(rw, r, err)
		return
	}

	points, err := h.discovery.Nearby(r.Context(), params)
	if err != nil {
		h.writeError(rw, r, err)
		return
	}
	rw.Success(points)
}

// PopularPoints handles GET /api/v1/points/popular.
func (h *Handler) PopularPoints(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, err := optionalInt(r.URL.Query(), paramLimit)
	if err != nil {
		h.writeError(rw, r, err)
		return
	}

	points, err := h.discovery.Popular(r.Context(), limit)
	if err != nil {
		h.writeError(rw, r, err)
		return
	}
	rw.Success(points)
}

// PointsByCategory handles GET /api/v1/points/categories/{category}.
func (h *Handler) PointsByCategory(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	category, err := models.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		h.writeError(rw, r, &discovery.ValidationError{Field: "Category", Message: discovery.MsgCategoryUnknown})
		return
	}
	limit, err := optionalInt(r.URL.Query(), paramLimit)
	if err != nil {
		h.writeError(rw, r, err)
		return
	}

	points, err := h.discovery.ByCategory(r.Context(), category, limit)
	if err != nil {
		h.writeError(rw, r, err)
		return
	}
	rw.Success(points)
}

// GetPoint handles GET /api/v1/points/{id}.
func (h *Handler) GetPoint(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	point, err := h.discovery.Point(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(rw, r, err)
		return
	}
	if point == nil {
		rw.NotFound("Point of interest not found")
		return
	}
	rw.Success(point)
}
