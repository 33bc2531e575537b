// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

// Package recommend turns a watch history into ranked catalog recommendations.
//
// # Pipeline
//
// A request runs four stages, each a bounded fan-out over catalog calls:
//
//   - Enrich: resolve genres, rating, overview and streaming providers for
//     every watched item and fold the genres into a preference profile
//   - Discover: fetch the catalog's related items for the most recent
//     watched items and merge them into an ordered candidate pool
//   - Score: enrich the first candidates of the pool and score each one by
//     rating and genre overlap with the profile
//   - Rank: stable sort by score and keep the top results
//
// Catalog failures never fail a request. A failed lookup drops that one item,
// and an empty history or an unreachable catalog yields an empty result.
//
// # Detail Cache
//
// Enrichment results are memoized process-wide in a DetailCache keyed by
// media type and id. Failed lookups are never stored, so a later request may
// retry them. Eviction policy is chosen by the injected cache.Cacher.
//
// # Usage
//
//	details := recommend.NewDetailCache(cacher)
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), client, details)
//	resp := engine.Recommend(ctx, []recommend.WatchedItem{{ID: 550, Type: catalog.MediaMovie}})
//
// # Thread Safety
//
// The engine is safe for concurrent use. Per-stage concurrency limits apply
// per request; set them to 1 for deterministic sequential execution.
package recommend
