// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package api

import (
	"bytes"
	"crypto/rand"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"net/http"

	"github.com/tomtom215/watchnext/internal/logging"
)

//go:embed templates/index.html
var templateFS embed.FS

// indexData is the data passed to the index template.
type indexData struct {
	Nonce   string
	Version string
}

func parseIndexTemplate() (*template.Template, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}
	return tmpl, nil
}

// generateNonce returns a random base64 value for the CSP script-src.
func generateNonce() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// serveIndex renders the home page with a per-request CSP nonce.
func (router *Router) serveIndex(w http.ResponseWriter, r *http.Request) {
	nonce, err := generateNonce()
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to generate CSP nonce")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := router.indexTemplate.Execute(&buf, indexData{Nonce: nonce, Version: router.handler.config.Version}); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to render index template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	csp := "default-src 'self'; " +
		"script-src 'self' 'nonce-" + nonce + "'; " +
		"style-src 'self' 'nonce-" + nonce + "'; " +
		"img-src 'self' https://image.tmdb.org data:; " +
		"connect-src 'self'; " +
		"frame-ancestors 'none'; base-uri 'self'; form-action 'self'"

	setSecurityHeaders(w, r)
	w.Header().Set("Content-Security-Policy", csp)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write index page")
	}
}
