// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/tomtom215/wayfinder/internal/discovery"
	"github.com/tomtom215/wayfinder/internal/models"
)

const (
	// BatchSize is the maximum number of ids resolved per backend query.
	BatchSize = 10

	// PopularMinRating is the rating floor for GetPopular.
	PopularMinRating = 4.0
)

// Store is a catalog backend. It extends the read interface the discovery
// engine consumes with bulk writes used for seeding.
type Store interface {
	discovery.CatalogStore

	// Upsert inserts or replaces points by ID.
	Upsert(ctx context.Context, points ...models.PointOfInterest) error
}

// ChunkIDs splits ids into consecutive batches of at most size ids.
func ChunkIDs(ids []string, size int) [][]string {
	if size <= 0 {
		size = BatchSize
	}
	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}

// comparePoints orders by rating descending, then ID ascending.
func comparePoints(a, b models.PointOfInterest) int {
	if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// sortPoints sorts points in place into catalog order.
func sortPoints(points []models.PointOfInterest) {
	slices.SortFunc(points, comparePoints)
}

// dedupeLast keeps the last occurrence of each ID, preserving first-seen order.
func dedupeLast(points []models.PointOfInterest) []models.PointOfInterest {
	index := make(map[string]int, len(points))
	out := make([]models.PointOfInterest, 0, len(points))
	for i := range points {
		if j, ok := index[points[i].ID]; ok {
			out[j] = points[i]
			continue
		}
		index[points[i].ID] = len(out)
		out = append(out, points[i])
	}
	return out
}

func normalizeLimit(limit int) int {
	if limit < 0 {
		return 0
	}
	return limit
}
