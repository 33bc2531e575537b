// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package recommend

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/watchnext/internal/logging"
	"github.com/tomtom215/watchnext/internal/metrics"
)

// Pipeline stage names, used for limits, metrics and logs.
const (
	stageEnrich   = "enrich"
	stageDiscover = "discover"
	stageScore    = "score"
	stageRank     = "rank"
)

// runTasks calls task(ctx, i) for every i in [0, n) with at most limit tasks
// running at once and returns when all have finished. Tasks report results
// through their own indexed slots, so completion order does not matter.
// A panicking task is logged and treated as having produced nothing.
func runTasks(ctx context.Context, stage string, limit, n int, task func(ctx context.Context, i int)) {
	if n == 0 {
		return
	}

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	active := metrics.WorkerTasksActive.WithLabelValues(stage)

	for i := 0; i < n; i++ {
		g.Go(func() (err error) {
			active.Inc()
			defer active.Dec()
			defer func() {
				if r := recover(); r != nil {
					logging.Ctx(ctx).Error().
						Str("stage", stage).
						Int("task", i).
						Str("panic", fmt.Sprint(r)).
						Msg("pipeline task panicked")
				}
			}()
			task(ctx, i)
			return nil
		})
	}
	_ = g.Wait()
}
