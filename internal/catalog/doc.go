// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package catalog provides the points-of-interest stores consumed by the
discovery engine.

# Backends

  - MemoryStore: map-backed store, used for tests and the built-in sample catalog
  - DuckDBStore: embedded analytical database (database/sql + duckdb-go)
  - MongoStore: document store over the official MongoDB driver

Every backend returns list results ordered by rating descending, ties broken
by ID ascending, and resolves GetByIDs in batches of at most BatchSize ids.

# Decorators

Stores compose with decorators that share the same interface:

	store := catalog.Instrument("duckdb", duck)
	store = catalog.NewRateLimited(store, 50, 100)
	store = catalog.NewCircuitBreaker(store, catalog.DefaultBreakerSettings("catalog-duckdb"), logger)
	store = catalog.NewCached(store, "duckdb", 10000, 5*time.Minute)

The circuit breaker rejects calls while the backend is failing. No decorator
retries. Cached answers GetByID and GetByIDs from an LRU and serves cached
points even while the breaker is open.

# Seeding

Seed loads the built-in sample points; LoadSeedFile reads a JSON array of
points using the model's JSON field names.
*/
package catalog
