// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package discovery

import (
	"context"
	"time"

	"github.com/tomtom215/wayfinder/internal/discovery/ranking"
	"github.com/tomtom215/wayfinder/internal/models"
)

// Search filters, ranks and paginates the catalog.
//
// Results are ordered by distance when q.Location is set and by rating
// otherwise. Total counts every match before pagination.
//
//nolint:gocritic // hugeParam: q passed by value for immutability
func (e *Engine) Search(ctx context.Context, q models.SearchQuery) (*models.SearchResult, error) {
	start := time.Now()
	e.searches.Add(1)

	if err := validateRequest(&q, searchMessages); err != nil {
		return nil, e.rejected(OpSearch, start, err)
	}

	limit := intOr(q.Limit, e.config.SearchDefaultLimit)
	offset := intOr(q.Offset, 0)

	candidates, err := e.searchCandidates(ctx, q)
	if err != nil {
		return nil, e.storeFailed(ctx, OpSearch, start, ErrSearchFailed, err)
	}

	matched := NewFilter(q).Apply(candidates)
	ranker := ranking.Select(q.Location, nil)
	res := Paginate(ranker.Rank(matched), offset, limit)

	l := e.requestLogger(ctx)
	l.Debug().
		Int("candidates", len(candidates)).
		Int("matched", res.Total).
		Int("returned", len(res.Points)).
		Str("ranker", ranker.Name()).
		Msg("search complete")

	e.succeeded(OpSearch, start, len(res.Points))
	return &res, nil
}

// searchCandidates narrows the store read to one category when the query
// names exactly one. The full filter still runs afterwards.
//
//nolint:gocritic // hugeParam: q passed by value for immutability
func (e *Engine) searchCandidates(ctx context.Context, q models.SearchQuery) ([]models.PointOfInterest, error) {
	if len(q.Categories) == 1 {
		return e.store.GetByCategory(ctx, q.Categories[0], e.config.SearchCandidateLimit)
	}
	return e.store.GetAll(ctx, e.config.SearchCandidateLimit)
}
