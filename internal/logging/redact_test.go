// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package logging

import (
	"strings"
	"testing"
)

func TestRedactURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		contains string
		absent   string
	}{
		{"api key", "https://api.themoviedb.org/3/movie/550?api_key=secret123&append_to_response=watch%2Fproviders", "api_key=%5BREDACTED%5D", "secret123"},
		{"upper case param", "https://x.test/a?API_KEY=zzz", "REDACTED", "zzz"},
		{"no query", "https://api.themoviedb.org/3/trending/all/day", "trending/all/day", "REDACTED"},
		{"harmless query", "https://x.test/search?query=batman", "query=batman", "REDACTED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := RedactURL(tt.in)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("RedactURL(%q) = %q, want it to contain %q", tt.in, got, tt.contains)
			}
			if strings.Contains(got, tt.absent) {
				t.Errorf("RedactURL(%q) = %q, must not contain %q", tt.in, got, tt.absent)
			}
		})
	}
}

func TestRedactSecret(t *testing.T) {
	t.Parallel()

	if got := RedactSecret("abcdef123456"); got != "********3456" {
		t.Errorf("RedactSecret = %q", got)
	}
	if got := RedactSecret("abc"); got != "[REDACTED]" {
		t.Errorf("RedactSecret(short) = %q", got)
	}
}
