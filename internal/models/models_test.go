// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package models

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestRecommendationResponse_EmptyDataIsArray(t *testing.T) {
	t.Parallel()

	resp := RecommendationResponse{Status: StatusSuccess, Data: []Recommendation{}, ProcessingTime: "0.00s"}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"status":"success","data":[],"processing_time":"0.00s"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestRecommendation_FieldNames(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Recommendation{ID: 807, Title: "Se7en", Type: "movie", Watch: "Netflix", Score: 43})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, key := range []string{`"id"`, `"title"`, `"type"`, `"rating"`, `"poster"`, `"year"`, `"overview"`, `"watch"`, `"score"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("missing key %s in %s", key, data)
		}
	}
}

func TestRecommendRequest_MissingKey(t *testing.T) {
	t.Parallel()

	var req RecommendRequest
	if err := json.Unmarshal([]byte(`{}`), &req); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(req.WatchedMovies) != 0 {
		t.Errorf("WatchedMovies = %v, want empty", req.WatchedMovies)
	}
}

func TestNewErrorResponse(t *testing.T) {
	t.Parallel()

	resp := NewErrorResponse(ErrCodeValidation, "bad type", map[string]interface{}{"field": "type"})
	if resp.Status != StatusError {
		t.Errorf("Status = %q, want %q", resp.Status, StatusError)
	}
	if resp.Error == nil || resp.Error.Code != ErrCodeValidation {
		t.Fatalf("Error = %+v", resp.Error)
	}
	if resp.Metadata.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), `"data"`) {
		t.Errorf("error envelope should omit data: %s", data)
	}
}
