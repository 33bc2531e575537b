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

// Enrich returns the DetailRecord for one item, from the cache when present.
// A successful fetch is cached; a failed one is returned as an error and
// never cached.
func (e *Engine) Enrich(ctx context.Context, mediaType catalog.MediaType, id int) (DetailRecord, error) {
	if rec, ok := e.details.Get(mediaType, id); ok {
		return rec, nil
	}

	d, err := e.catalog.FetchDetails(ctx, mediaType, id)
	if err != nil {
		return DetailRecord{}, err
	}

	rec := newDetailRecord(d, e.config.Region)
	e.details.Put(mediaType, id, rec)
	return rec, nil
}

// enrichmentResult is the explicit outcome of one lookup.
type enrichmentResult struct {
	record DetailRecord
	ok     bool
}

// enrichAll enriches items concurrently under limit. The result slice is
// parallel to items; failed lookups have ok=false.
func (e *Engine) enrichAll(ctx context.Context, stage string, limit int, items []WatchedItem) []enrichmentResult {
	results := make([]enrichmentResult, len(items))

	runTasks(ctx, stage, limit, len(items), func(ctx context.Context, i int) {
		item := items[i]
		rec, err := e.Enrich(ctx, item.Type, item.ID)
		if err != nil {
			logging.Ctx(ctx).Debug().Err(err).
				Str("stage", stage).
				Str("type", string(item.Type)).
				Int("id", item.ID).
				Msg("enrichment failed, dropping item")
			return
		}
		results[i] = enrichmentResult{record: rec, ok: true}
	})

	return results
}

// buildWatchedProfile enriches the watched items and folds their genres.
func (e *Engine) buildWatchedProfile(ctx context.Context, watched []WatchedItem) Profile {
	start := time.Now()
	results := e.enrichAll(ctx, stageEnrich, e.config.Workers.Enrich, watched)

	records := make([]DetailRecord, 0, len(results))
	for _, r := range results {
		if r.ok {
			records = append(records, r.record)
		}
	}

	dropped := len(results) - len(records)
	if dropped > 0 {
		e.enrichFailures.Add(int64(dropped))
		metrics.RecordDropped(stageEnrich, dropped)
	}
	metrics.RecordStage(stageEnrich, time.Since(start))

	profile := buildProfile(records)
	logging.Ctx(ctx).Debug().
		Int("watched", len(watched)).
		Int("resolved", len(records)).
		Int("genres", len(profile)).
		Dur("elapsed", time.Since(start)).
		Msg("watched items enriched")
	return profile
}
