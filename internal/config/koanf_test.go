// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// cleanEnv clears the process environment so host variables such as
// LOG_LEVEL cannot leak into a load.
func cleanEnv(t *testing.T) {
	t.Helper()
	saved := os.Environ()
	os.Clearenv()
	t.Cleanup(func() {
		os.Clearenv()
		for _, kv := range saved {
			for i := 0; i < len(kv); i++ {
				if kv[i] == '=' {
					os.Setenv(kv[:i], kv[i+1:])
					break
				}
			}
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 5001 {
		t.Errorf("Server.Port = %d, want 5001", cfg.Server.Port)
	}
	if cfg.Catalog.APIKey != "" {
		t.Errorf("Catalog.APIKey should be empty by default, got %q", cfg.Catalog.APIKey)
	}
	if cfg.Catalog.Region != "IN" {
		t.Errorf("Catalog.Region = %q, want IN", cfg.Catalog.Region)
	}
	if cfg.Catalog.DetailTimeout != 2*time.Second {
		t.Errorf("Catalog.DetailTimeout = %v, want 2s", cfg.Catalog.DetailTimeout)
	}
	if cfg.Catalog.PosterBase != "https://image.tmdb.org/t/p/w500" {
		t.Errorf("Catalog.PosterBase = %q", cfg.Catalog.PosterBase)
	}
	if cfg.Catalog.BannerBase != "https://image.tmdb.org/t/p/w92" {
		t.Errorf("Catalog.BannerBase = %q", cfg.Catalog.BannerBase)
	}

	r := cfg.Recommend
	if r.EnrichWorkers != 10 || r.DiscoverWorkers != 5 || r.ScoreWorkers != 15 {
		t.Errorf("worker limits = %d/%d/%d, want 10/5/15", r.EnrichWorkers, r.DiscoverWorkers, r.ScoreWorkers)
	}
	if r.SeedCount != 5 || r.NeighborsPerSeed != 10 || r.MaxCandidates != 40 || r.TopN != 18 {
		t.Errorf("truncation policy = %d/%d/%d/%d, want 5/10/40/18", r.SeedCount, r.NeighborsPerSeed, r.MaxCandidates, r.TopN)
	}
	if r.RatingWeight != 40 || r.GenreWeight != 15 || r.MaxScore != 100 {
		t.Errorf("weights = %v/%v/%v, want 40/15/100", r.RatingWeight, r.GenreWeight, r.MaxScore)
	}
	if r.DefaultYear != "2026" {
		t.Errorf("DefaultYear = %q, want 2026", r.DefaultYear)
	}
	if cfg.Cache.Type != "unbounded" {
		t.Errorf("Cache.Type = %q, want unbounded", cfg.Cache.Type)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"TMDB_API_KEY", "catalog.api_key"},
		{"tmdb_region", "catalog.region"},
		{"HTTP_PORT", "server.port"},
		{"CACHE_TYPE", "cache.type"},
		{"BREAKER_TIMEOUT", "catalog.breaker.timeout"},
		{"RECOMMEND_TOP_N", "recommend.top_n"},
		{"LOG_LEVEL", "logging.level"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envTransformFunc(tt.input); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	cleanEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	t.Run("no config file exists", func(t *testing.T) {
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty", got)
		}
	})

	t.Run("config.yaml in working dir", func(t *testing.T) {
		if err := os.WriteFile("config.yaml", []byte("server: {}\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		defer os.Remove("config.yaml")
		if got := findConfigFile(); got != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", got)
		}
	})

	t.Run("CONFIG_PATH override", func(t *testing.T) {
		custom := filepath.Join(dir, "custom.yaml")
		if err := os.WriteFile(custom, []byte("server: {}\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Setenv(ConfigPathEnvVar, custom)
		if got := findConfigFile(); got != custom {
			t.Errorf("findConfigFile() = %q, want %q", got, custom)
		}
	})

	t.Run("CONFIG_PATH missing file falls through", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "nope.yaml"))
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty", got)
		}
	})
}

func TestLoadWithKoanfRequiresAPIKey(t *testing.T) {
	cleanEnv(t)
	t.Chdir(t.TempDir())

	if _, err := LoadWithKoanf(); err == nil {
		t.Fatal("expected error without TMDB_API_KEY")
	}
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	cleanEnv(t)
	t.Chdir(t.TempDir())

	t.Setenv("TMDB_API_KEY", "k-12345")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("TMDB_REGION", "US")
	t.Setenv("TMDB_DETAIL_TIMEOUT", "750ms")
	t.Setenv("CACHE_TYPE", "lru")
	t.Setenv("CACHE_CAPACITY", "250")
	t.Setenv("RECOMMEND_SCORE_WORKERS", "3")
	t.Setenv("BREAKER_FAILURE_RATIO", "0.5")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Catalog.APIKey != "k-12345" {
		t.Errorf("Catalog.APIKey = %q", cfg.Catalog.APIKey)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Catalog.Region != "US" {
		t.Errorf("Catalog.Region = %q, want US", cfg.Catalog.Region)
	}
	if cfg.Catalog.DetailTimeout != 750*time.Millisecond {
		t.Errorf("Catalog.DetailTimeout = %v, want 750ms", cfg.Catalog.DetailTimeout)
	}
	if cfg.Cache.Type != "lru" || cfg.Cache.Capacity != 250 {
		t.Errorf("Cache = %+v, want lru/250", cfg.Cache)
	}
	if cfg.Recommend.ScoreWorkers != 3 {
		t.Errorf("Recommend.ScoreWorkers = %d, want 3", cfg.Recommend.ScoreWorkers)
	}
	if cfg.Recommend.EnrichWorkers != 10 {
		t.Errorf("Recommend.EnrichWorkers = %d, want default 10", cfg.Recommend.EnrichWorkers)
	}
	if cfg.Catalog.Breaker.FailureRatio != 0.5 {
		t.Errorf("Breaker.FailureRatio = %v, want 0.5", cfg.Catalog.Breaker.FailureRatio)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	cleanEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	yaml := `
catalog:
  api_key: file-key
  region: GB
recommend:
  top_n: 12
cache:
  type: ttl
  ttl: 30m
logging:
  level: warn
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Catalog.APIKey != "file-key" || cfg.Catalog.Region != "GB" {
		t.Errorf("Catalog = %+v", cfg.Catalog)
	}
	if cfg.Recommend.TopN != 12 {
		t.Errorf("Recommend.TopN = %d, want 12", cfg.Recommend.TopN)
	}
	if cfg.Cache.Type != "ttl" || cfg.Cache.TTL != 30*time.Minute {
		t.Errorf("Cache = %+v, want ttl/30m", cfg.Cache)
	}
	if cfg.Recommend.SeedCount != 5 {
		t.Errorf("Recommend.SeedCount = %d, want default 5", cfg.Recommend.SeedCount)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	cleanEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("catalog:\n  api_key: file-key\n  region: GB\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TMDB_REGION", "DE")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Catalog.Region != "DE" {
		t.Errorf("Catalog.Region = %q, want env value DE", cfg.Catalog.Region)
	}
	if cfg.Catalog.APIKey != "file-key" {
		t.Errorf("Catalog.APIKey = %q, want file value", cfg.Catalog.APIKey)
	}
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 5001}
	if got := s.Addr(); got != "127.0.0.1:5001" {
		t.Errorf("Addr() = %q", got)
	}
}
