// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package recommend

import (
	"strconv"

	"github.com/tomtom215/watchnext/internal/cache"
	"github.com/tomtom215/watchnext/internal/catalog"
)

// DetailCache memoizes DetailRecords by media type and id. Concurrent lookups
// of the same key may both miss and both store; the last write wins.
type DetailCache struct {
	store cache.Cacher[DetailRecord]
}

// NewDetailCache wraps store.
func NewDetailCache(store cache.Cacher[DetailRecord]) *DetailCache {
	return &DetailCache{store: store}
}

// Get returns the cached record for (mediaType, id).
func (c *DetailCache) Get(mediaType catalog.MediaType, id int) (DetailRecord, bool) {
	return c.store.Get(detailKey(mediaType, id))
}

// Put stores rec for (mediaType, id).
func (c *DetailCache) Put(mediaType catalog.MediaType, id int, rec DetailRecord) {
	c.store.Set(detailKey(mediaType, id), rec)
}

// Len returns the number of cached records.
func (c *DetailCache) Len() int {
	return c.store.Len()
}

// HitRate returns the cache hit percentage.
func (c *DetailCache) HitRate() float64 {
	return c.store.HitRate()
}

// Close releases the underlying store.
func (c *DetailCache) Close() error {
	return c.store.Close()
}

// detailKey formats the composite key, e.g. "movie_550".
func detailKey(mediaType catalog.MediaType, id int) string {
	return string(mediaType) + "_" + strconv.Itoa(id)
}
