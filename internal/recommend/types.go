// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package recommend

import (
	"strings"

	"github.com/tomtom215/watchnext/internal/catalog"
)

const (
	fallbackOverview  = "No description available."
	fallbackStreaming = "Not Available for Streaming"
)

// WatchedItem is one entry of the caller's watch history.
type WatchedItem struct {
	ID   int
	Type catalog.MediaType
}

// DetailRecord is the enrichment of one catalog item. Records are immutable
// once cached and shared by all requests.
type DetailRecord struct {
	GenreIDs      []int   `json:"genre_ids"` // distinct, response order
	Rating        float64 `json:"rating"`
	Overview      string  `json:"overview"`
	StreamingInfo string  `json:"streaming_info"`
}

// newDetailRecord extracts a DetailRecord from a details response.
func newDetailRecord(d *catalog.Details, region string) DetailRecord {
	rec := DetailRecord{
		GenreIDs:      distinct(d.GenreIDs()),
		Rating:        d.VoteAverage,
		Overview:      d.Overview,
		StreamingInfo: fallbackStreaming,
	}
	if rec.Overview == "" {
		rec.Overview = fallbackOverview
	}
	if names := d.FlatrateProviders(region); len(names) > 0 {
		rec.StreamingInfo = strings.Join(names, ", ")
	}
	return rec
}

// Profile counts how often each genre appears across the watched items.
type Profile map[int]int

// buildProfile folds the genres of records into a Profile.
func buildProfile(records []DetailRecord) Profile {
	p := make(Profile)
	for _, rec := range records {
		for _, g := range rec.GenreIDs {
			p[g]++
		}
	}
	return p
}

// overlap counts the genres of ids present in p. Frequency is ignored.
func (p Profile) overlap(ids []int) int {
	n := 0
	for _, id := range ids {
		if _, ok := p[id]; ok {
			n++
		}
	}
	return n
}

func distinct(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Metrics is a snapshot of engine counters.
type Metrics struct {
	Requests         int64
	EmptyResponses   int64
	EnrichFailures   int64
	NeighborFailures int64
	ScoreDropped     int64
}
