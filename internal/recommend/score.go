// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package recommend

import (
	"context"
	"time"

	"github.com/tomtom215/watchnext/internal/logging"
	"github.com/tomtom215/watchnext/internal/metrics"
	"github.com/tomtom215/watchnext/internal/models"
)

// Score combines the normalized rating with the number of genres shared with
// the profile, clamped to [0, w.Max].
func (w Weights) Score(rating float64, genres []int, profile Profile) float64 {
	score := rating/10*w.Rating + float64(profile.overlap(genres))*w.Genre
	if score > w.Max {
		return w.Max
	}
	if score < 0 {
		return 0
	}
	return score
}

// scoreCandidates enriches and scores the first MaxCandidates ids of pool.
// The result is in discovery order with nil for dropped candidates.
func (e *Engine) scoreCandidates(ctx context.Context, pool *CandidatePool, profile Profile) []*models.Recommendation {
	start := time.Now()
	ids := pool.IDs(e.config.MaxCandidates)
	scored := make([]*models.Recommendation, len(ids))

	runTasks(ctx, stageScore, e.config.Workers.Score, len(ids), func(ctx context.Context, i int) {
		cand, _ := pool.Get(ids[i])
		mediaType := cand.Type()

		rec, err := e.Enrich(ctx, mediaType, cand.ID)
		if err != nil {
			logging.Ctx(ctx).Debug().Err(err).
				Str("type", string(mediaType)).
				Int("id", cand.ID).
				Msg("candidate enrichment failed, dropping candidate")
			return
		}

		scored[i] = &models.Recommendation{
			ID:       cand.ID,
			Title:    cand.DisplayTitle(),
			Type:     string(mediaType),
			Rating:   cand.VoteAverage,
			Poster:   e.config.Images.Poster(cand.PosterPath),
			Year:     cand.Year(e.config.DefaultYear),
			Overview: rec.Overview,
			Watch:    rec.StreamingInfo,
			Score:    e.config.Weights.Score(rec.Rating, rec.GenreIDs, profile),
		}
	})

	metrics.RecordStage(stageScore, time.Since(start))
	return scored
}
