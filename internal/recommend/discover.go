// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package recommend

import (
	"context"
	"time"

	"github.com/tomtom215/watchnext/internal/catalog"
	"github.com/tomtom215/watchnext/internal/logging"
	"github.com/tomtom215/watchnext/internal/metrics"
)

// CandidatePool holds discovered candidates by id in insertion order.
// A repeated id keeps its first position and takes the latest summary.
type CandidatePool struct {
	order   []int
	entries map[int]catalog.Summary
}

func newCandidatePool() *CandidatePool {
	return &CandidatePool{entries: make(map[int]catalog.Summary)}
}

// add stores s and reports whether its id was new.
func (p *CandidatePool) add(s catalog.Summary) bool {
	_, seen := p.entries[s.ID]
	if !seen {
		p.order = append(p.order, s.ID)
	}
	p.entries[s.ID] = s
	return !seen
}

// Len returns the number of distinct candidates.
func (p *CandidatePool) Len() int {
	return len(p.order)
}

// Get returns the summary stored for id.
func (p *CandidatePool) Get(id int) (catalog.Summary, bool) {
	s, ok := p.entries[id]
	return s, ok
}

// IDs returns at most limit ids in discovery order. limit <= 0 means all.
func (p *CandidatePool) IDs(limit int) []int {
	if limit <= 0 || limit > len(p.order) {
		limit = len(p.order)
	}
	ids := make([]int, limit)
	copy(ids, p.order[:limit])
	return ids
}

// seeds returns the last n watched items in their original order.
func seeds(watched []WatchedItem, n int) []WatchedItem {
	if len(watched) <= n {
		return watched
	}
	return watched[len(watched)-n:]
}

// discover fetches related items for the most recent watched items and merges
// them into a pool, skipping watched ids and entries without a poster.
// Batches are merged in seed order regardless of completion order.
func (e *Engine) discover(ctx context.Context, watched []WatchedItem) *CandidatePool {
	start := time.Now()
	seedItems := seeds(watched, e.config.SeedCount)
	batches := make([][]catalog.Summary, len(seedItems))

	runTasks(ctx, stageDiscover, e.config.Workers.Discover, len(seedItems), func(ctx context.Context, i int) {
		seed := seedItems[i]
		results, err := e.catalog.FetchNeighbors(ctx, seed.Type, seed.ID)
		if err != nil {
			e.neighborFailures.Add(1)
			logging.Ctx(ctx).Debug().Err(err).
				Str("type", string(seed.Type)).
				Int("id", seed.ID).
				Msg("neighbor fetch failed, using empty batch")
			return
		}
		if len(results) > e.config.NeighborsPerSeed {
			results = results[:e.config.NeighborsPerSeed]
		}
		batches[i] = results
	})

	watchedIDs := make(map[int]struct{}, len(watched))
	for _, w := range watched {
		watchedIDs[w.ID] = struct{}{}
	}

	pool := newCandidatePool()
	for _, batch := range batches {
		for _, s := range batch {
			if _, isWatched := watchedIDs[s.ID]; isWatched {
				continue
			}
			if !s.HasPoster() {
				continue
			}
			pool.add(s)
		}
	}

	metrics.RecordStage(stageDiscover, time.Since(start))
	metrics.RecommendCandidatePool.Observe(float64(pool.Len()))
	logging.Ctx(ctx).Debug().
		Int("seeds", len(seedItems)).
		Int("candidates", pool.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("candidate pool built")
	return pool
}
