// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package main is the entry point for the Wayfinder server.

Wayfinder serves a catalog of points of interest over a JSON REST API:
filtered text search, personalized recommendations, nearby scans, category
and popularity lookups, and per-user favorites.

# Application Architecture

Long-running components run under a Suture v4 supervisor tree:

	wayfinder
	├── storage-layer
	│   └── favorites-gc (FAVORITES_BACKEND=badger)
	├── events-layer
	│   └── favorites event consumer (EVENTS_BACKEND=memory|nats)
	└── api-layer
	    └── http-server

Startup order:

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Catalog: memory, DuckDB or MongoDB, seeded on request, wrapped with
    metrics, an optional rate limiter and a circuit breaker
 4. Discovery engine
 5. Events: Watermill over gochannel or NATS (optionally embedded)
 6. Favorites: memory, BadgerDB or Redis store
 7. HTTP: Chi router with request IDs, CORS, rate limiting, compression
    and Prometheus metrics
 8. Supervisor tree

# Configuration

	Priority: Environment variables > Config file > Defaults

Common environment variables:

	HTTP_PORT=3857               # listen port
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	CATALOG_BACKEND=memory       # memory, duckdb, mongo
	CATALOG_SEED=true            # load the built-in sample points
	DUCKDB_PATH=/data/wayfinder.duckdb
	MONGO_URI=mongodb://localhost:27017

	FAVORITES_BACKEND=memory     # memory, badger, redis
	FAVORITES_BADGER_PATH=/data/favorites
	REDIS_ADDR=localhost:6379

	EVENTS_BACKEND=memory        # none, memory, nats
	NATS_EMBEDDED=false
	NATS_URL=nats://127.0.0.1:4222

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The HTTP server drains
in-flight requests within HTTP_SHUTDOWN_TIMEOUT, then the favorites store,
the events transport and the catalog are closed in reverse order of
opening. Services that miss the timeout are logged by name.

# Usage

	CATALOG_BACKEND=duckdb DUCKDB_PATH=./poi.duckdb \
	FAVORITES_BACKEND=badger FAVORITES_BADGER_PATH=./favorites \
	go run ./cmd/server

	curl 'localhost:3857/api/v1/points/search?q=museum&lat=-23.55&lon=-46.63'
*/
package main
