// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package recommend

import (
	"sort"

	"github.com/tomtom215/watchnext/internal/models"
)

// rank drops nil entries, sorts by score descending and keeps the first topN.
// Equal scores keep their discovery order.
func rank(scored []*models.Recommendation, topN int) (ranked []models.Recommendation, dropped int) {
	ranked = make([]models.Recommendation, 0, len(scored))
	for _, r := range scored {
		if r == nil {
			dropped++
			continue
		}
		ranked = append(ranked, *r)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked, dropped
}
