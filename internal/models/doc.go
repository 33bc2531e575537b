// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

/*
Package models defines the HTTP wire types for the WatchNext API.

Every JSON body the server reads or writes is declared here so handlers,
the recommendation pipeline and tests agree on field names. The package has
no dependencies on other internal packages.

Key Components:

  - RecommendRequest / WatchedItem: body of POST /get_recommendations
  - RecommendationResponse / Recommendation: the ranked result envelope
  - TrendingItem: one card of GET /get_trending
  - SearchResult: one row of GET /search
  - APIResponse / APIError: error envelope for client faults
  - HealthResponse: GET /api/v1/health

Field names follow the browser client shipped with the home page and must not
change without updating it.
*/
package models
