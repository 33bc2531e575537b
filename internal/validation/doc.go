// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

// Package validation provides struct validation using go-playground/validator v10.
//
// The package wraps a thread-safe singleton validator and translates field
// errors into the API's VALIDATION_ERROR envelope. Field paths use JSON names,
// so a bad history entry is reported as "watched_movies[2].type" rather than
// the Go field path.
//
// # Quick Start
//
//	var req models.RecommendRequest
//	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
//	    // INVALID_JSON
//	}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
//
// # Tags In Use
//
//   - gt=0: catalog ids are positive
//   - required,oneof=movie tv: media type of a watched item
//   - max=n,dive: bound a slice and validate each element
//
// # Thread Safety
//
// GetValidator and ValidateStruct are safe for concurrent use. The validator
// caches struct metadata after the first call for each type.
package validation
