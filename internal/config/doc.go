// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package config loads and validates Wayfinder configuration.

# Configuration Sources

Koanf layers three sources, later ones winning:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, then config.yaml, config.yml,
    /etc/wayfinder/config.yaml, /etc/wayfinder/config.yml
 3. Environment variables listed in envMappings

Unknown environment variables are ignored. Slice settings such as
CORS_ORIGINS accept comma-separated values.

# Environment Variables

HTTP Server:
  - HTTP_PORT: Listen port (default: 3857)
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_TIMEOUT: Read and write timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 15s)

API and Security:
  - API_DEFAULT_PAGE_SIZE, API_MAX_PAGE_SIZE (default: 20, 100)
  - API_REQUEST_TIMEOUT: Per-request deadline (default: 10s)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW (default: 100 per 1m)
  - DISABLE_RATE_LIMIT: Turn off per-IP rate limiting
  - CORS_ORIGINS: Allowed origins (default: *)

Catalog:
  - CATALOG_BACKEND: memory, duckdb or mongo (default: memory)
  - CATALOG_SEED, CATALOG_SEED_FILE
  - DUCKDB_PATH, DUCKDB_MAX_MEMORY, DUCKDB_THREADS
  - MONGO_URI, MONGO_DATABASE, MONGO_COLLECTION, MONGO_TIMEOUT
  - CATALOG_BREAKER_ENABLED and CATALOG_BREAKER_* tuning
  - CATALOG_RATE_LIMIT_ENABLED, CATALOG_RATE_LIMIT_RPS, CATALOG_RATE_LIMIT_BURST

Discovery:
  - SEARCH_CANDIDATE_LIMIT, RECOMMEND_LIMIT, RECOMMEND_RADIUS_KM,
    RECOMMEND_MIN_RATING, RECOMMEND_OVER_FETCH, NEARBY_RADIUS_KM,
    NEARBY_LIMIT, NEARBY_SCAN_LIMIT

Favorites:
  - FAVORITES_BACKEND: memory, badger or redis (default: memory)
  - FAVORITES_BADGER_PATH
  - REDIS_ADDR, REDIS_PASSWORD, REDIS_DB, REDIS_KEY_PREFIX

Events:
  - EVENTS_BACKEND: none, memory or nats (default: memory)
  - EVENTS_TOPIC
  - NATS_URL, NATS_EMBEDDED, NATS_HOST, NATS_PORT

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: Include file:line (default: false)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

Load validates the result and returns the first problem it finds.
*/
package config
