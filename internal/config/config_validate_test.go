// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	cfg := defaultConfig()
	cfg.Catalog.APIKey = "test-key"
	return cfg
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults with key", func(*Config) {}, ""},
		{"missing api key", func(c *Config) { c.Catalog.APIKey = " " }, "TMDB_API_KEY"},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"bad base url scheme", func(c *Config) { c.Catalog.BaseURL = "ftp://api.themoviedb.org/3" }, "TMDB_BASE_URL"},
		{"base url with query", func(c *Config) { c.Catalog.BaseURL = "https://api.themoviedb.org/3?x=1" }, "TMDB_BASE_URL"},
		{"bad region", func(c *Config) { c.Catalog.Region = "IND" }, "TMDB_REGION"},
		{"zero detail timeout", func(c *Config) { c.Catalog.DetailTimeout = 0 }, "TMDB_DETAIL_TIMEOUT"},
		{"breaker ratio", func(c *Config) { c.Catalog.Breaker.FailureRatio = 1.5 }, "BREAKER_FAILURE_RATIO"},
		{"breaker disabled skips ratio", func(c *Config) {
			c.Catalog.Breaker.Enabled = false
			c.Catalog.Breaker.FailureRatio = 0
		}, ""},
		{"zero score workers", func(c *Config) { c.Recommend.ScoreWorkers = 0 }, "RECOMMEND_SCORE_WORKERS"},
		{"zero top n", func(c *Config) { c.Recommend.TopN = 0 }, "RECOMMEND_TOP_N"},
		{"unknown cache", func(c *Config) { c.Cache.Type = "redis" }, "CACHE_TYPE"},
		{"lru without capacity", func(c *Config) {
			c.Cache.Type = "lru"
			c.Cache.Capacity = 0
		}, "CACHE_CAPACITY"},
		{"ttl without ttl", func(c *Config) {
			c.Cache.Type = "ttl"
			c.Cache.TTL = 0
		}, "CACHE_TTL"},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit disabled", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"wildcard cors in production", func(c *Config) { c.Server.Environment = "production" }, "CORS_ORIGINS"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}
