// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	_ "github.com/tomtom215/cinematch/docs"
)

func TestSwaggerRoutes(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestEngine(t), nil)

	t.Run("doc.json", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var doc struct {
			Swagger  string                     `json:"swagger"`
			BasePath string                     `json:"basePath"`
			Paths    map[string]json.RawMessage `json:"paths"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
			t.Fatalf("decode doc.json: %v", err)
		}
		if doc.Swagger != "2.0" || doc.BasePath != "/api/v1" {
			t.Errorf("swagger = %q basePath = %q", doc.Swagger, doc.BasePath)
		}
		for _, p := range []string{"/recommend", "/autocomplete", "/movies/{id}", "/genres/{genre}/movies", "/health"} {
			if _, ok := doc.Paths[p]; !ok {
				t.Errorf("doc.json has no path %s", p)
			}
		}
	})

	t.Run("index", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "swagger-ui") {
			t.Error("index.html does not mount swagger-ui")
		}
	})
}
