// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package api exposes the recommender over HTTP using a chi router.

Endpoints:

	GET  /                              service banner with the movie count
	GET  /api/v1/health                 status, model sizes and endpoint latency
	GET  /api/v1/health/live            liveness
	GET  /api/v1/health/ready           readiness
	POST /api/v1/recommend              {"title": "...", "k": 5, "diversity": 0.3}
	GET  /api/v1/movies                 every title
	GET  /api/v1/movies/top             best rated well-known movies
	GET  /api/v1/movies/{id}            full detail with cast and crew
	GET  /api/v1/genres                 genre counts
	GET  /api/v1/genres/{genre}/movies  best rated movies of a genre
	GET  /api/v1/autocomplete?q=        title suggestions
	GET  /metrics                       Prometheus
	GET  /swagger/*                     Swagger UI and doc.json

Every JSON response uses the same envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "..."}}
	{"success": false, "error": {"code": "NOT_FOUND", "message": "..."}, "meta": {...}}

Middleware order is request ID, real IP, panic recovery and CORS for all
routes, then per-IP rate limiting, security headers, Prometheus
instrumentation and the latency monitor for the API group.
*/
package api
