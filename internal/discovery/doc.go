// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package discovery implements point-of-interest search, recommendation and
radius scans on top of a read-only CatalogStore.

# Overview

Every operation follows the same pipeline:

	validate -> fetch candidates -> filter -> rank -> paginate/truncate

Validation happens before any store call. The engine keeps no state between
calls apart from atomic counters, so one Engine is shared by all requests.

# Operations

  - Search: filters the catalog by text, categories, price ranges, rating and
    distance, ranks by distance when a location is given, and returns one page
    with the post-filter total.
  - Recommend: takes popular points (over-fetched), keeps those within the
    recommendation radius of the user, sorts them by distance, truncates, and
    finally re-sorts by interest score when interests are given.
  - Nearby: returns the points within a radius, nearest first.
  - Point, Points, ByCategory, Popular: direct lookups.

# Errors

Invalid input produces *ValidationError with a fixed, user-facing message.
Store failures produce *RepositoryError, whose message is generic per
operation; the underlying cause is logged and available through Cause().
A missing point is not an error: Point returns nil, nil.

# Example

	engine, err := discovery.NewEngine(store, discovery.DefaultConfig(), logger)
	if err != nil {
	    return err
	}

	res, err := engine.Search(ctx, models.SearchQuery{
	    Query:       "museum",
	    Location:    &models.Coordinates{Latitude: -22.9, Longitude: -43.2},
	    MaxDistance: models.Float(10),
	    Limit:       models.Int(5),
	})
*/
package discovery
