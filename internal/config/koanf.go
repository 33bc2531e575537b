// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order; the first existing file wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/watchnext/config.yaml",
	"/etc/watchnext/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           5001,
			Host:           "0.0.0.0",
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   30 * time.Second,
			RequestTimeout: 10 * time.Second,
			Environment:    "development",
		},
		Catalog: CatalogConfig{
			BaseURL:       "https://api.themoviedb.org/3",
			APIKey:        "",
			Region:        "IN",
			DetailTimeout: 2 * time.Second,
			ListTimeout:   5 * time.Second,
			PosterBase:    "https://image.tmdb.org/t/p/w500",
			BannerBase:    "https://image.tmdb.org/t/p/w92",
			MaxIdleConns:  64,
			MaxInFlight:   0,
			Breaker: BreakerConfig{
				Enabled:      true,
				MaxRequests:  3,
				Interval:     time.Minute,
				Timeout:      30 * time.Second,
				MinRequests:  10,
				FailureRatio: 0.6,
			},
		},
		Recommend: RecommendConfig{
			EnrichWorkers:    10,
			DiscoverWorkers:  5,
			ScoreWorkers:     15,
			SeedCount:        5,
			NeighborsPerSeed: 10,
			MaxCandidates:    40,
			TopN:             18,
			RatingWeight:     40,
			GenreWeight:      15,
			MaxScore:         100,
			DefaultYear:      "2026",
			TrendingLimit:    18,
			SearchLimit:      5,
		},
		Cache: CacheConfig{
			Type:            "unbounded",
			TTL:             6 * time.Hour,
			Capacity:        10000,
			CleanupInterval: 5 * time.Minute,
		},
		Security: SecurityConfig{
			RateLimitReqs:     120,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf layers defaults, the optional config file, then environment
// variables, and validates the result.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// sliceConfigPaths arrive from the environment as comma-separated strings.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		raw, ok := k.Get(path).(string)
		if !ok || raw == "" {
			continue
		}
		parts := strings.Split(raw, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) == 0 {
			continue
		}
		if err := k.Set(path, out); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment names to koanf paths. Anything
// not listed is ignored so unrelated variables cannot leak into the config.
var envMappings = map[string]string{
	// Server
	"http_port":       "server.port",
	"http_host":       "server.host",
	"read_timeout":    "server.read_timeout",
	"write_timeout":   "server.write_timeout",
	"request_timeout": "server.request_timeout",
	"environment":     "server.environment",

	// Catalog
	"tmdb_api_key":          "catalog.api_key",
	"tmdb_base_url":         "catalog.base_url",
	"tmdb_region":           "catalog.region",
	"tmdb_detail_timeout":   "catalog.detail_timeout",
	"tmdb_list_timeout":     "catalog.list_timeout",
	"tmdb_poster_base":      "catalog.poster_base",
	"tmdb_banner_base":      "catalog.banner_base",
	"tmdb_max_idle_conns":   "catalog.max_idle_conns",
	"tmdb_max_in_flight":    "catalog.max_in_flight",
	"breaker_enabled":       "catalog.breaker.enabled",
	"breaker_max_requests":  "catalog.breaker.max_requests",
	"breaker_interval":      "catalog.breaker.interval",
	"breaker_timeout":       "catalog.breaker.timeout",
	"breaker_min_requests":  "catalog.breaker.min_requests",
	"breaker_failure_ratio": "catalog.breaker.failure_ratio",

	// Recommendation pipeline
	"recommend_enrich_workers":     "recommend.enrich_workers",
	"recommend_discover_workers":   "recommend.discover_workers",
	"recommend_score_workers":      "recommend.score_workers",
	"recommend_seed_count":         "recommend.seed_count",
	"recommend_neighbors_per_seed": "recommend.neighbors_per_seed",
	"recommend_max_candidates":     "recommend.max_candidates",
	"recommend_top_n":              "recommend.top_n",
	"trending_limit":               "recommend.trending_limit",
	"search_limit":                 "recommend.search_limit",

	// Cache
	"cache_type":             "cache.type",
	"cache_ttl":              "cache.ttl",
	"cache_capacity":         "cache.capacity",
	"cache_cleanup_interval": "cache.cleanup_interval",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its koanf path, or
// "" to skip it.
//
//	TMDB_API_KEY -> catalog.api_key
//	CACHE_TYPE   -> cache.type
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
