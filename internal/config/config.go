// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

// Package config loads WatchNext configuration from built-in defaults, an
// optional YAML file, and environment variables, in that order of precedence
// (environment wins).
//
// The only setting without a usable default is the catalog API key:
//
//	TMDB_API_KEY=... ./watchnext
//
// A YAML file is picked up from CONFIG_PATH or the first of DefaultConfigPaths
// that exists:
//
//	catalog:
//	  region: US
//	cache:
//	  type: lru
//	  capacity: 5000
package config

import (
	"time"
)

// Config is the root configuration tree.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Cache     CacheConfig     `koanf:"cache"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port           int           `koanf:"port"`
	Host           string        `koanf:"host"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"` // upper bound for one API request, pipeline included
	Environment    string        `koanf:"environment"`     // development, staging, production
}

// CatalogConfig configures the outbound TMDB client.
type CatalogConfig struct {
	BaseURL       string        `koanf:"base_url"`
	APIKey        string        `koanf:"api_key"`
	Region        string        `koanf:"region"` // watch-provider country code
	DetailTimeout time.Duration `koanf:"detail_timeout"`
	ListTimeout   time.Duration `koanf:"list_timeout"` // neighbors, trending, search
	PosterBase    string        `koanf:"poster_base"`
	BannerBase    string        `koanf:"banner_base"`
	MaxIdleConns  int           `koanf:"max_idle_conns"`
	MaxInFlight   int64         `koanf:"max_in_flight"` // 0 disables the process-wide outbound cap
	Breaker       BreakerConfig `koanf:"breaker"`
}

// BreakerConfig configures the circuit breaker wrapped around catalog calls.
type BreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"` // probes allowed while half-open
	Interval     time.Duration `koanf:"interval"`     // closed-state counter reset period
	Timeout      time.Duration `koanf:"timeout"`      // open -> half-open delay
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// RecommendConfig carries the pipeline policy constants.
type RecommendConfig struct {
	EnrichWorkers    int     `koanf:"enrich_workers"`
	DiscoverWorkers  int     `koanf:"discover_workers"`
	ScoreWorkers     int     `koanf:"score_workers"`
	SeedCount        int     `koanf:"seed_count"`
	NeighborsPerSeed int     `koanf:"neighbors_per_seed"`
	MaxCandidates    int     `koanf:"max_candidates"`
	TopN             int     `koanf:"top_n"`
	RatingWeight     float64 `koanf:"rating_weight"`
	GenreWeight      float64 `koanf:"genre_weight"`
	MaxScore         float64 `koanf:"max_score"`
	DefaultYear      string  `koanf:"default_year"`
	TrendingLimit    int     `koanf:"trending_limit"`
	SearchLimit      int     `koanf:"search_limit"`
}

// CacheConfig selects the detail cache backend and its bounds.
type CacheConfig struct {
	Type            string        `koanf:"type"` // unbounded, ttl, lru, badger
	TTL             time.Duration `koanf:"ttl"`
	Capacity        int           `koanf:"capacity"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// SecurityConfig holds inbound protection settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig mirrors logging.Config without the writer.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load is the entrypoint used by cmd/server.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}

// IsProduction reports whether the service runs with production checks.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}
