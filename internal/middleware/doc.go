// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package middleware provides the HTTP middleware that is not tied to the
router: request IDs, gzip compression, Prometheus instrumentation and an
in-process latency monitor.

Handlers are wrapped as http.HandlerFunc so they compose with the api
package's chi adapter:

	r.Use(adapt(middleware.RequestID))
	r.Use(adapt(middleware.PrometheusMetrics))
	r.With(adapt(middleware.Compression)).Get("/movies", h.Movies)

Metrics are labelled with the chi route pattern ("/api/v1/movies/{id}")
rather than the raw path, so one endpoint is one series regardless of ids.
*/
package middleware
