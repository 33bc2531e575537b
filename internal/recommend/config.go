// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package recommend

import (
	"fmt"

	"github.com/tomtom215/watchnext/internal/catalog"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Workers bounds the concurrent catalog calls of each stage.
	Workers WorkerLimits

	// SeedCount is how many of the most recent watched items seed discovery.
	SeedCount int

	// NeighborsPerSeed caps the related items taken from each seed.
	NeighborsPerSeed int

	// MaxCandidates caps how many pool entries are scored, in discovery order.
	MaxCandidates int

	// TopN caps the returned recommendations.
	TopN int

	// Weights controls the score formula.
	Weights Weights

	// DefaultYear is shown when a listing has no release or air date.
	DefaultYear string

	// TrendingLimit and SearchLimit cap the listing endpoints.
	TrendingLimit int
	SearchLimit   int

	// Region selects the watch-provider country.
	Region string

	// Images builds poster and banner URLs.
	Images catalog.Images
}

// WorkerLimits are per-stage concurrency bounds.
type WorkerLimits struct {
	Enrich   int
	Discover int
	Score    int
}

// Weights defines score = rating/10*Rating + overlap*Genre, capped at Max.
type Weights struct {
	Rating float64
	Genre  float64
	Max    float64
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		Workers: WorkerLimits{
			Enrich:   10,
			Discover: 5,
			Score:    15,
		},
		SeedCount:        5,
		NeighborsPerSeed: 10,
		MaxCandidates:    40,
		TopN:             18,
		Weights: Weights{
			Rating: 40,
			Genre:  15,
			Max:    100,
		},
		DefaultYear:   "2026",
		TrendingLimit: 18,
		SearchLimit:   5,
		Region:        "IN",
		Images: catalog.Images{
			PosterBase: "https://image.tmdb.org/t/p/w500",
			BannerBase: "https://image.tmdb.org/t/p/w92",
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Workers.Enrich < 1 || c.Workers.Discover < 1 || c.Workers.Score < 1 {
		return fmt.Errorf("worker limits must be at least 1, got %+v", c.Workers)
	}
	if c.SeedCount < 1 {
		return fmt.Errorf("seed count must be at least 1, got %d", c.SeedCount)
	}
	if c.NeighborsPerSeed < 1 {
		return fmt.Errorf("neighbors per seed must be at least 1, got %d", c.NeighborsPerSeed)
	}
	if c.MaxCandidates < 1 {
		return fmt.Errorf("max candidates must be at least 1, got %d", c.MaxCandidates)
	}
	if c.TopN < 1 {
		return fmt.Errorf("top n must be at least 1, got %d", c.TopN)
	}
	if c.Weights.Rating < 0 || c.Weights.Genre < 0 {
		return fmt.Errorf("score weights must be non-negative, got %+v", c.Weights)
	}
	if c.Weights.Max <= 0 {
		return fmt.Errorf("max score must be positive, got %v", c.Weights.Max)
	}
	if c.DefaultYear == "" {
		return fmt.Errorf("default year must not be empty")
	}
	if c.TrendingLimit < 1 || c.SearchLimit < 1 {
		return fmt.Errorf("listing limits must be at least 1, got trending=%d search=%d", c.TrendingLimit, c.SearchLimit)
	}
	if c.Region == "" {
		return fmt.Errorf("region must not be empty")
	}
	if c.Images.PosterBase == "" || c.Images.BannerBase == "" {
		return fmt.Errorf("image base URLs must not be empty")
	}
	return nil
}
