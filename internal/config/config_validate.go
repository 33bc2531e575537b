// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/watchnext/internal/logging"
)

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

var validCacheTypes = map[string]bool{
	"unbounded": true,
	"ttl":       true,
	"lru":       true,
	"badger":    true,
}

// Validate checks that required configuration is present and within bounds.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if strings.TrimSpace(c.Catalog.APIKey) == "" {
		return fmt.Errorf("TMDB_API_KEY is required")
	}
	if err := validateHTTPURL(c.Catalog.BaseURL, "TMDB_BASE_URL"); err != nil {
		return err
	}
	if err := validateHTTPURL(c.Catalog.PosterBase, "TMDB_POSTER_BASE"); err != nil {
		return err
	}
	if err := validateHTTPURL(c.Catalog.BannerBase, "TMDB_BANNER_BASE"); err != nil {
		return err
	}
	if len(c.Catalog.Region) != 2 {
		return fmt.Errorf("TMDB_REGION must be a two-letter country code, got %q", c.Catalog.Region)
	}
	if c.Catalog.DetailTimeout <= 0 || c.Catalog.ListTimeout <= 0 {
		return fmt.Errorf("TMDB_DETAIL_TIMEOUT and TMDB_LIST_TIMEOUT must be positive")
	}
	if c.Catalog.MaxInFlight < 0 {
		return fmt.Errorf("TMDB_MAX_IN_FLIGHT must not be negative")
	}
	return c.validateBreaker()
}

func (c *Config) validateBreaker() error {
	b := c.Catalog.Breaker
	if !b.Enabled {
		return nil
	}
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("BREAKER_FAILURE_RATIO must be in (0, 1], got %v", b.FailureRatio)
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("BREAKER_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	positive := []struct {
		name  string
		value int
	}{
		{"RECOMMEND_ENRICH_WORKERS", r.EnrichWorkers},
		{"RECOMMEND_DISCOVER_WORKERS", r.DiscoverWorkers},
		{"RECOMMEND_SCORE_WORKERS", r.ScoreWorkers},
		{"RECOMMEND_SEED_COUNT", r.SeedCount},
		{"RECOMMEND_NEIGHBORS_PER_SEED", r.NeighborsPerSeed},
		{"RECOMMEND_MAX_CANDIDATES", r.MaxCandidates},
		{"RECOMMEND_TOP_N", r.TopN},
		{"TRENDING_LIMIT", r.TrendingLimit},
		{"SEARCH_LIMIT", r.SearchLimit},
	}
	for _, p := range positive {
		if p.value < 1 {
			return fmt.Errorf("%s must be at least 1, got %d", p.name, p.value)
		}
	}
	if r.MaxScore <= 0 {
		return fmt.Errorf("recommend.max_score must be positive")
	}
	if r.RatingWeight < 0 || r.GenreWeight < 0 {
		return fmt.Errorf("recommend weights must not be negative")
	}
	return nil
}

func (c *Config) validateCache() error {
	if !validCacheTypes[c.Cache.Type] {
		return fmt.Errorf("CACHE_TYPE must be one of: unbounded, ttl, lru, badger")
	}
	switch c.Cache.Type {
	case "ttl", "badger":
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("CACHE_TTL must be positive for cache type %s", c.Cache.Type)
		}
	case "lru":
		if c.Cache.Capacity < 1 {
			return fmt.Errorf("CACHE_CAPACITY must be at least 1 for cache type lru")
		}
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	if c.Server.IsProduction() {
		for _, o := range c.Security.CORSOrigins {
			if o == "*" {
				return fmt.Errorf("CORS_ORIGINS must not contain '*' when ENVIRONMENT=production")
			}
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a known level", c.Logging.Level)
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
