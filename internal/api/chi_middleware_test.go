// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/middleware"
)

func TestChiMiddlewareConfigFrom(t *testing.T) {
	t.Parallel()

	c := ChiMiddlewareConfigFrom(config.SecurityConfig{
		CORSOrigins:     []string{"http://localhost:3000"},
		FrontendURL:     "https://movies.example.com",
		RateLimitReqs:   7,
		RateLimitWindow: 10 * time.Second,
	})
	want := []string{"http://localhost:3000", "https://movies.example.com"}
	if !reflect.DeepEqual(c.CORSAllowedOrigins, want) {
		t.Errorf("origins = %v, want %v", c.CORSAllowedOrigins, want)
	}
	if c.RateLimitRequests != 7 || c.RateLimitWindow != 10*time.Second || c.RateLimitDisabled {
		t.Errorf("rate limit = %d/%v disabled=%v", c.RateLimitRequests, c.RateLimitWindow, c.RateLimitDisabled)
	}

	d := ChiMiddlewareConfigFrom(config.SecurityConfig{RateLimitDisabled: true})
	if d.RateLimitRequests != 100 || d.RateLimitWindow != time.Minute || !d.RateLimitDisabled {
		t.Errorf("zero values should keep defaults: %+v", d)
	}
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	srv := newTestServer(t, newTestEngine(t), NewChiMiddleware(cfg))

	codes := make([]int, 3)
	var last envelope
	for i := range codes {
		var rec *httptest.ResponseRecorder
		rec, last = do(t, srv, http.MethodGet, "/api/v1/genres", "")
		codes[i] = rec.Code
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("codes = %v, want [200 200 429]", codes)
	}
	if last.Error == nil || last.Error.Code != ErrCodeTooManyRequests {
		t.Errorf("429 body error = %+v", last.Error)
	}

	// Health checks have their own budget.
	rec, _ := do(t, srv, http.MethodGet, "/api/v1/health/live", "")
	if rec.Code != http.StatusOK {
		t.Errorf("health after API limit: status %d", rec.Code)
	}
}

func TestRateLimitedHandler(t *testing.T) {
	t.Parallel()

	counter := metrics.APIRateLimitHits.WithLabelValues("/test/limited")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	rateLimited(rec, httptest.NewRequest(http.MethodGet, "/test/limited", nil))

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rec.Code)
	}
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("rate limit hits delta = %v, want 1", got)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	cfg.RateLimitDisabled = true
	srv := newTestServer(t, newTestEngine(t), NewChiMiddleware(cfg))

	for i := 0; i < 5; i++ {
		if rec, _ := do(t, srv, http.MethodGet, "/api/v1/genres", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, rec.Code)
		}
	}
}

func TestCORS(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, newTestEngine(t), nil)

	tests := []struct {
		origin string
		want   string
	}{
		{origin: "http://localhost:3000", want: "http://localhost:3000"},
		{origin: "https://evil.example", want: ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/recommend", nil)
		req.Header.Set("Origin", tt.origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
			t.Errorf("origin %s: Allow-Origin = %q, want %q", tt.origin, got, tt.want)
		}
	}
}

func TestRequestIDWithLogging(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, newTestEngine(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	req.Header.Set(middleware.RequestIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if got := rec.Header().Get(middleware.RequestIDHeader); got != "trace-42" {
		t.Errorf("response X-Request-ID = %q", got)
	}

	_, env := do(t, srv, http.MethodGet, "/api/v1/health/live", "")
	if env.Meta == nil || env.Meta.RequestID == "" {
		t.Error("generated request ID missing from meta")
	}
}

func TestAPISecurityHeaders(t *testing.T) {
	t.Parallel()

	h := APISecurityHeaders()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" || rec.Header().Get("X-Frame-Options") != "DENY" {
		t.Errorf("headers = %v", rec.Header())
	}
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS set on plain HTTP")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Header().Get("Strict-Transport-Security") == "" {
		t.Error("HSTS missing behind TLS proxy")
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	if got := sanitizeLogValue("a\nb\x7f"); got != `a\x0ab\x7f` {
		t.Errorf("sanitizeLogValue() = %q", got)
	}
}
