// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package config

import "time"

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	API       APIConfig       `koanf:"api"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Discovery DiscoveryConfig `koanf:"discovery"`
	Favorites FavoritesConfig `koanf:"favorites"`
	Events    EventsConfig    `koanf:"events"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production"
}

// APIConfig holds API pagination and response settings
type APIConfig struct {
	DefaultPageSize int           `koanf:"default_page_size"`
	MaxPageSize     int           `koanf:"max_page_size"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
}

// SecurityConfig holds rate limiting and CORS settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// CatalogConfig selects and tunes the points of interest store.
type CatalogConfig struct {
	// Backend is memory, duckdb or mongo.
	Backend string `koanf:"backend"`

	// Seed loads SeedFile, or the built-in sample points when SeedFile is
	// empty, into the store at startup.
	Seed     bool   `koanf:"seed"`
	SeedFile string `koanf:"seed_file"`

	DuckDB    DuckDBConfig           `koanf:"duckdb"`
	Mongo     MongoConfig            `koanf:"mongo"`
	Breaker   CircuitBreakerConfig   `koanf:"breaker"`
	RateLimit CatalogRateLimitConfig `koanf:"rate_limit"`
	Cache     CatalogCacheConfig     `koanf:"cache"`
}

// CatalogCacheConfig sizes the in-process point cache.
type CatalogCacheConfig struct {
	Enabled bool          `koanf:"enabled"`
	Size    int           `koanf:"size"`
	TTL     time.Duration `koanf:"ttl"`
}

// DuckDBConfig configures the DuckDB catalog backend.
type DuckDBConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = runtime.NumCPU()
}

// MongoConfig configures the MongoDB catalog backend.
type MongoConfig struct {
	URI        string        `koanf:"uri"`
	Database   string        `koanf:"database"`
	Collection string        `koanf:"collection"`
	Timeout    time.Duration `koanf:"timeout"`
}

// CircuitBreakerConfig tunes the breaker in front of the catalog store.
type CircuitBreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"`  // trial requests allowed while half-open
	Interval     time.Duration `koanf:"interval"`      // closed-state counter reset period
	Timeout      time.Duration `koanf:"timeout"`       // open-state duration
	MinRequests  uint32        `koanf:"min_requests"`  // requests before the ratio applies
	FailureRatio float64       `koanf:"failure_ratio"` // trips at or above this ratio
}

// CatalogRateLimitConfig throttles catalog reads.
type CatalogRateLimitConfig struct {
	Enabled bool    `koanf:"enabled"`
	RPS     float64 `koanf:"rps"`
	Burst   int     `koanf:"burst"`
}

// DiscoveryConfig tunes the discovery engine.
type DiscoveryConfig struct {
	SearchCandidateLimit int     `koanf:"search_candidate_limit"`
	RecommendLimit       int     `koanf:"recommend_limit"`
	RecommendRadiusKm    float64 `koanf:"recommend_radius_km"`
	RecommendMinRating   float64 `koanf:"recommend_min_rating"`
	RecommendOverFetch   int     `koanf:"recommend_over_fetch"`
	NearbyRadiusKm       float64 `koanf:"nearby_radius_km"`
	NearbyLimit          int     `koanf:"nearby_limit"`
	NearbyScanLimit      int     `koanf:"nearby_scan_limit"`
}

// FavoritesConfig selects the favorites store.
type FavoritesConfig struct {
	// Backend is memory, badger or redis.
	Backend    string `koanf:"backend"`
	BadgerPath string `koanf:"badger_path"`

	// BadgerGCInterval is how often the value log is garbage collected.
	BadgerGCInterval time.Duration `koanf:"badger_gc_interval"`

	Redis RedisConfig `koanf:"redis"`
}

// RedisConfig configures the Redis favorites backend.
type RedisConfig struct {
	Addr      string `koanf:"addr"`
	Password  string `koanf:"password"`
	DB        int    `koanf:"db"`
	KeyPrefix string `koanf:"key_prefix"`
}

// EventsConfig configures favorites event publishing.
type EventsConfig struct {
	// Backend is none, memory or nats.
	Backend string     `koanf:"backend"`
	Topic   string     `koanf:"topic"`
	NATS    NATSConfig `koanf:"nats"`
}

// NATSConfig configures the NATS transport.
type NATSConfig struct {
	URL string `koanf:"url"`

	// Embedded starts an in-process server and ignores URL.
	Embedded bool   `koanf:"embedded"`
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
}

// Load reads configuration from the layered sources.
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
