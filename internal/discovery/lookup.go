// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package discovery

import (
	"context"
	"strings"
	"time"

	"github.com/tomtom215/wayfinder/internal/models"
)

// Point returns one point by ID, or nil when it does not exist.
func (e *Engine) Point(ctx context.Context, id string) (*models.PointOfInterest, error) {
	start := time.Now()
	e.lookups.Add(1)

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, e.rejected(OpLookup, start, &ValidationError{Field: "ID", Message: models.MsgPointIDRequired})
	}

	p, err := e.store.GetByID(ctx, id)
	if err != nil {
		return nil, e.storeFailed(ctx, OpLookup, start, ErrLookupFailed, err)
	}

	n := 0
	if p != nil {
		n = 1
	}
	e.succeeded(OpLookup, start, n)
	return p, nil
}

// Points returns the existing points among ids in the order of ids.
// Blank and repeated IDs are skipped.
func (e *Engine) Points(ctx context.Context, ids []string) ([]models.PointOfInterest, error) {
	start := time.Now()
	e.lookups.Add(1)

	wanted := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		wanted = append(wanted, id)
	}

	if len(wanted) == 0 {
		e.succeeded(OpLookup, start, 0)
		return []models.PointOfInterest{}, nil
	}

	found, err := e.store.GetByIDs(ctx, wanted)
	if err != nil {
		return nil, e.storeFailed(ctx, OpLookup, start, ErrLookupFailed, err)
	}

	byID := make(map[string]models.PointOfInterest, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	out := make([]models.PointOfInterest, 0, len(found))
	for _, id := range wanted {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}

	e.succeeded(OpLookup, start, len(out))
	return out, nil
}

// ByCategory returns the top-rated points in category.
func (e *Engine) ByCategory(ctx context.Context, category models.Category, limit *int) ([]models.PointOfInterest, error) {
	start := time.Now()
	e.lookups.Add(1)

	if !category.Valid() {
		return nil, e.rejected(OpLookup, start, &ValidationError{Field: "Category", Message: MsgCategoryUnknown})
	}
	if err := validateLimit(limit); err != nil {
		return nil, e.rejected(OpLookup, start, err)
	}

	points, err := e.store.GetByCategory(ctx, category, intOr(limit, e.config.LookupDefaultLimit))
	if err != nil {
		return nil, e.storeFailed(ctx, OpLookup, start, ErrLookupFailed, err)
	}

	e.succeeded(OpLookup, start, len(points))
	return points, nil
}

// Popular returns the top-rated points with a rating of at least 4.0.
func (e *Engine) Popular(ctx context.Context, limit *int) ([]models.PointOfInterest, error) {
	start := time.Now()
	e.lookups.Add(1)

	if err := validateLimit(limit); err != nil {
		return nil, e.rejected(OpLookup, start, err)
	}

	points, err := e.store.GetPopular(ctx, intOr(limit, e.config.LookupDefaultLimit))
	if err != nil {
		return nil, e.storeFailed(ctx, OpLookup, start, ErrLookupFailed, err)
	}

	e.succeeded(OpLookup, start, len(points))
	return points, nil
}
