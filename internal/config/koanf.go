// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/wayfinder/config.yaml",
	"/etc/wayfinder/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            3857,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			Environment:     "development",
		},
		API: APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
			RequestTimeout:  10 * time.Second,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Catalog: CatalogConfig{
			Backend:  "memory",
			Seed:     true,
			SeedFile: "",
			DuckDB: DuckDBConfig{
				Path:      "/data/wayfinder.duckdb",
				MaxMemory: "1GB",
				Threads:   0,
			},
			Mongo: MongoConfig{
				URI:        "",
				Database:   "wayfinder",
				Collection: "points_of_interest",
				Timeout:    10 * time.Second,
			},
			Breaker: CircuitBreakerConfig{
				Enabled:      true,
				MaxRequests:  3,
				Interval:     time.Minute,
				Timeout:      30 * time.Second,
				MinRequests:  10,
				FailureRatio: 0.6,
			},
			RateLimit: CatalogRateLimitConfig{
				Enabled: false, // store-side quotas only
				RPS:     100,
				Burst:   20,
			},
			Cache: CatalogCacheConfig{
				Enabled: true,
				Size:    10000,
				TTL:     5 * time.Minute,
			},
		},
		Discovery: DiscoveryConfig{
			SearchCandidateLimit: 500,
			RecommendLimit:       10,
			RecommendRadiusKm:    50,
			RecommendMinRating:   4.0,
			RecommendOverFetch:   2,
			NearbyRadiusKm:       10,
			NearbyLimit:          20,
			NearbyScanLimit:      100,
		},
		Favorites: FavoritesConfig{
			Backend:          "memory",
			BadgerPath:       "/data/favorites",
			BadgerGCInterval: 10 * time.Minute,
			Redis: RedisConfig{
				Addr:      "localhost:6379",
				Password:  "",
				DB:        0,
				KeyPrefix: "wayfinder:favorites:",
			},
		},
		Events: EventsConfig{
			Backend: "memory",
			Topic:   "wayfinder.favorites",
			NATS: NATSConfig{
				URL:      "nats://127.0.0.1:4222",
				Embedded: false,
				Host:     "127.0.0.1",
				Port:     4222,
			},
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
//
// This function is the preferred way to load configuration and provides:
//   - Type-safe configuration unmarshaling
//   - Clear precedence: ENV > File > Defaults
//   - Support for nested configuration via koanf struct tags
//   - Backward compatibility with existing environment variables
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// Transform environment variable names to koanf paths:
	// HTTP_PORT -> server.port
	// DUCKDB_PATH -> catalog.duckdb.path
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	// Unmarshal into Config struct
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	// Validate the configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	// Check environment variable first
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	// Search default paths
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// This is necessary because env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// If it's already a slice (from YAML file), skip
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		// If it's a string, split by comma
		if strVal, ok := val.(string); ok {
			if strVal == "" {
				continue
			}
			parts := strings.Split(strVal, ",")
			trimmed := make([]string, 0, len(parts))
			for _, p := range parts {
				p = strings.TrimSpace(p)
				if p != "" {
					trimmed = append(trimmed, p)
				}
			}
			if len(trimmed) > 0 {
				if err := k.Set(path, trimmed); err != nil {
					return fmt.Errorf("failed to set %s: %w", path, err)
				}
			}
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server mappings
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	// API mappings
	"api_default_page_size": "api.default_page_size",
	"api_max_page_size":     "api.max_page_size",
	"api_request_timeout":   "api.request_timeout",

	// Security mappings
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Catalog mappings
	"catalog_backend":               "catalog.backend",
	"catalog_seed":                  "catalog.seed",
	"catalog_seed_file":             "catalog.seed_file",
	"duckdb_path":                   "catalog.duckdb.path",
	"duckdb_max_memory":             "catalog.duckdb.max_memory",
	"duckdb_threads":                "catalog.duckdb.threads",
	"mongo_uri":                     "catalog.mongo.uri",
	"mongo_database":                "catalog.mongo.database",
	"mongo_collection":              "catalog.mongo.collection",
	"mongo_timeout":                 "catalog.mongo.timeout",
	"catalog_breaker_enabled":       "catalog.breaker.enabled",
	"catalog_breaker_max_requests":  "catalog.breaker.max_requests",
	"catalog_breaker_interval":      "catalog.breaker.interval",
	"catalog_breaker_timeout":       "catalog.breaker.timeout",
	"catalog_breaker_min_requests":  "catalog.breaker.min_requests",
	"catalog_breaker_failure_ratio": "catalog.breaker.failure_ratio",
	"catalog_rate_limit_enabled":    "catalog.rate_limit.enabled",
	"catalog_rate_limit_rps":        "catalog.rate_limit.rps",
	"catalog_rate_limit_burst":      "catalog.rate_limit.burst",
	"catalog_cache_enabled":         "catalog.cache.enabled",
	"catalog_cache_size":            "catalog.cache.size",
	"catalog_cache_ttl":             "catalog.cache.ttl",

	// Discovery mappings
	"search_candidate_limit": "discovery.search_candidate_limit",
	"recommend_limit":        "discovery.recommend_limit",
	"recommend_radius_km":    "discovery.recommend_radius_km",
	"recommend_min_rating":   "discovery.recommend_min_rating",
	"recommend_over_fetch":   "discovery.recommend_over_fetch",
	"nearby_radius_km":       "discovery.nearby_radius_km",
	"nearby_limit":           "discovery.nearby_limit",
	"nearby_scan_limit":      "discovery.nearby_scan_limit",

	// Favorites mappings
	"favorites_backend":            "favorites.backend",
	"favorites_badger_path":        "favorites.badger_path",
	"favorites_badger_gc_interval": "favorites.badger_gc_interval",
	"redis_addr":                   "favorites.redis.addr",
	"redis_password":               "favorites.redis.password",
	"redis_db":                     "favorites.redis.db",
	"redis_key_prefix":             "favorites.redis.key_prefix",

	// Events mappings
	"events_backend": "events.backend",
	"events_topic":   "events.topic",
	"nats_url":       "events.nats.url",
	"nats_embedded":  "events.nats.embedded",
	"nats_host":      "events.nats.host",
	"nats_port":      "events.nats.port",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - DUCKDB_PATH -> catalog.duckdb.path
//   - REDIS_ADDR -> favorites.redis.addr
//   - NATS_EMBEDDED -> events.nats.embedded
func envTransformFunc(key string) string {
	// Unmapped keys return "" and are skipped so that unrelated
	// environment variables never reach the config.
	return envMappings[strings.ToLower(key)]
}

// GetKoanfInstance returns a new Koanf instance for advanced usage.
func GetKoanfInstance() *koanf.Koanf {
	return koanf.New(".")
}
