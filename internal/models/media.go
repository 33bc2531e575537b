// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package models

// WatchedItem is one entry of the caller's watch history.
//
// Type is "movie" or "tv"; the catalog uses "tv" for shows.
type WatchedItem struct {
	ID   int    `json:"id" validate:"gt=0"`
	Type string `json:"type" validate:"required,oneof=movie tv"`
}

// RecommendRequest is the body of POST /get_recommendations. A missing
// watched_movies key decodes to an empty history.
//
// Example:
//
//	{
//	  "watched_movies": [
//	    {"id": 550, "type": "movie"},
//	    {"id": 1399, "type": "tv"}
//	  ]
//	}
type RecommendRequest struct {
	WatchedMovies []WatchedItem `json:"watched_movies" validate:"max=500,dive"`
}

// Recommendation is one scored candidate. Rating is the listing's display
// rating; Score uses the rating from the item's details.
//
// Example:
//
//	{
//	  "id": 807,
//	  "title": "Se7en",
//	  "type": "movie",
//	  "rating": 8.4,
//	  "poster": "https://image.tmdb.org/t/p/w500/6yoghtyTpznpBik8EngEmJskVUO.jpg",
//	  "year": "1995",
//	  "overview": "Two homicide detectives are on a desperate hunt...",
//	  "watch": "Netflix, Amazon Prime Video",
//	  "score": 63.6
//	}
type Recommendation struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Type     string  `json:"type"`
	Rating   float64 `json:"rating"`
	Poster   string  `json:"poster"`
	Year     string  `json:"year"`
	Overview string  `json:"overview"`
	Watch    string  `json:"watch"`
	Score    float64 `json:"score"`
}

// RecommendationResponse wraps the ranked recommendations. Data is always a
// JSON array, never null. ProcessingTime is wall-clock seconds with two
// decimals and an "s" suffix, e.g. "1.37s".
type RecommendationResponse struct {
	Status         string           `json:"status"`
	Data           []Recommendation `json:"data"`
	ProcessingTime string           `json:"processing_time"`
}

// TrendingItem is one card of the trending grid.
type TrendingItem struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Type     string  `json:"type"`
	Rating   float64 `json:"rating"`
	Poster   string  `json:"poster"`
	Year     string  `json:"year"`
	Overview string  `json:"overview"`
}

// SearchResult is one row of the search dropdown. Banner is a small-format
// poster URL.
type SearchResult struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Type   string `json:"type"`
	Banner string `json:"banner"`
}
