// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package config

import (
	"fmt"
	"time"
)

// maxResultLimit mirrors the largest page any discovery operation accepts.
const maxResultLimit = 100

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateAPI,
		c.validateSecurity,
		c.validateLogging,
		c.validateCatalog,
		c.validateDiscovery,
		c.validateFavorites,
		c.validateEvents,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// IsProduction reports whether ENVIRONMENT is production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// validateAPI validates pagination bounds
func (c *Config) validateAPI() error {
	if c.API.MaxPageSize < 1 || c.API.MaxPageSize > maxResultLimit {
		return fmt.Errorf("API_MAX_PAGE_SIZE must be between 1 and %d", maxResultLimit)
	}
	if c.API.DefaultPageSize < 1 || c.API.DefaultPageSize > c.API.MaxPageSize {
		return fmt.Errorf("API_DEFAULT_PAGE_SIZE must be between 1 and API_MAX_PAGE_SIZE (%d)", c.API.MaxPageSize)
	}
	if c.API.RequestTimeout <= 0 {
		return fmt.Errorf("API_REQUEST_TIMEOUT must be positive")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateSecurity validates rate limiting bounds
func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// HasWildcardCORS reports whether any allowed origin is "*".
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if wildcard CORS is used in production,
// which should be logged at startup
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && c.HasWildcardCORS()
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// validateCatalog validates the catalog backend and its decorators
func (c *Config) validateCatalog() error {
	switch c.Catalog.Backend {
	case "memory":
	case "duckdb":
		if c.Catalog.DuckDB.Path == "" {
			return fmt.Errorf("DUCKDB_PATH is required when CATALOG_BACKEND=duckdb")
		}
		if c.Catalog.DuckDB.Threads < 0 {
			return fmt.Errorf("DUCKDB_THREADS must be non-negative")
		}
	case "mongo":
		if err := validateMongoURI(c.Catalog.Mongo.URI); err != nil {
			return fmt.Errorf("MONGO_URI: %w", err)
		}
		if c.Catalog.Mongo.Database == "" || c.Catalog.Mongo.Collection == "" {
			return fmt.Errorf("MONGO_DATABASE and MONGO_COLLECTION are required when CATALOG_BACKEND=mongo")
		}
		if c.Catalog.Mongo.Timeout <= 0 {
			return fmt.Errorf("MONGO_TIMEOUT must be positive")
		}
	default:
		return fmt.Errorf("CATALOG_BACKEND must be one of: memory, duckdb, mongo")
	}

	if err := c.validateBreaker(); err != nil {
		return err
	}
	if err := c.validateCatalogRateLimit(); err != nil {
		return err
	}
	if cc := c.Catalog.Cache; cc.Enabled && (cc.Size < 1 || cc.TTL <= 0) {
		return fmt.Errorf("CATALOG_CACHE_SIZE and CATALOG_CACHE_TTL must be positive when the cache is enabled")
	}
	return nil
}

// validateBreaker validates circuit breaker tuning (only if enabled)
func (c *Config) validateBreaker() error {
	b := c.Catalog.Breaker
	if !b.Enabled {
		return nil
	}
	if b.MaxRequests < 1 {
		return fmt.Errorf("CATALOG_BREAKER_MAX_REQUESTS must be at least 1")
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("CATALOG_BREAKER_TIMEOUT must be positive")
	}
	if b.Interval < 0 {
		return fmt.Errorf("CATALOG_BREAKER_INTERVAL must be non-negative")
	}
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("CATALOG_BREAKER_FAILURE_RATIO must be in (0, 1]")
	}
	return nil
}

// validateCatalogRateLimit validates the store-side limiter (only if enabled)
func (c *Config) validateCatalogRateLimit() error {
	rl := c.Catalog.RateLimit
	if !rl.Enabled {
		return nil
	}
	if rl.RPS <= 0 {
		return fmt.Errorf("CATALOG_RATE_LIMIT_RPS must be positive")
	}
	if rl.Burst < 1 {
		return fmt.Errorf("CATALOG_RATE_LIMIT_BURST must be at least 1")
	}
	return nil
}

// validateDiscovery validates engine tuning
func (c *Config) validateDiscovery() error {
	d := c.Discovery
	limits := []struct {
		env   string
		value int
	}{
		{"RECOMMEND_LIMIT", d.RecommendLimit},
		{"NEARBY_LIMIT", d.NearbyLimit},
	}
	for _, l := range limits {
		if l.value < 1 || l.value > maxResultLimit {
			return fmt.Errorf("%s must be between 1 and %d", l.env, maxResultLimit)
		}
	}
	if d.SearchCandidateLimit < 1 {
		return fmt.Errorf("SEARCH_CANDIDATE_LIMIT must be positive")
	}
	if d.NearbyScanLimit < 1 {
		return fmt.Errorf("NEARBY_SCAN_LIMIT must be positive")
	}
	if d.RecommendOverFetch < 1 {
		return fmt.Errorf("RECOMMEND_OVER_FETCH must be at least 1")
	}
	if d.RecommendRadiusKm <= 0 || d.NearbyRadiusKm <= 0 {
		return fmt.Errorf("RECOMMEND_RADIUS_KM and NEARBY_RADIUS_KM must be positive")
	}
	if d.RecommendMinRating < 0 || d.RecommendMinRating > 5 {
		return fmt.Errorf("RECOMMEND_MIN_RATING must be between 0 and 5")
	}
	return nil
}

// validateFavorites validates the favorites backend
func (c *Config) validateFavorites() error {
	switch c.Favorites.Backend {
	case "memory":
		return nil
	case "badger":
		if c.Favorites.BadgerPath == "" {
			return fmt.Errorf("FAVORITES_BADGER_PATH is required when FAVORITES_BACKEND=badger")
		}
		if c.Favorites.BadgerGCInterval < 0 {
			return fmt.Errorf("FAVORITES_BADGER_GC_INTERVAL must be non-negative (0 disables GC)")
		}
		return nil
	case "redis":
		if c.Favorites.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required when FAVORITES_BACKEND=redis")
		}
		if c.Favorites.Redis.DB < 0 {
			return fmt.Errorf("REDIS_DB must be non-negative")
		}
		return nil
	default:
		return fmt.Errorf("FAVORITES_BACKEND must be one of: memory, badger, redis")
	}
}

// validateEvents validates event publishing (only if enabled)
func (c *Config) validateEvents() error {
	switch c.Events.Backend {
	case "none":
		return nil
	case "memory", "nats":
	default:
		return fmt.Errorf("EVENTS_BACKEND must be one of: none, memory, nats")
	}

	if c.Events.Topic == "" {
		return fmt.Errorf("EVENTS_TOPIC is required when events are enabled")
	}
	if c.Events.Backend != "nats" {
		return nil
	}

	if c.Events.NATS.Embedded {
		// -1 asks the embedded server for a random port.
		if c.Events.NATS.Port < -1 || c.Events.NATS.Port > 65535 {
			return fmt.Errorf("NATS_PORT must be between -1 and 65535")
		}
		return nil
	}
	if err := validateNATSURL(c.Events.NATS.URL); err != nil {
		return fmt.Errorf("NATS_URL: %w", err)
	}
	return nil
}
