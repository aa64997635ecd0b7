// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package metrics provides Prometheus metrics for the recommendation service.

All collectors are registered with the default registry via promauto and are
exposed at /metrics in Prometheus text format:

	curl http://localhost:8000/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: requests by method, route pattern and status code
  - api_request_duration_seconds: request latency by method and route pattern
  - api_active_requests: in-flight requests
  - api_rate_limit_hits_total: rejections by the per-IP limiter

Model Metrics:
  - model_build_duration_seconds: wall time of the startup build
  - catalogue_movies: rows in the catalogue
  - model_vocabulary_terms: vectorizer vocabulary size
  - catalogue_rows_skipped_total: rows dropped while loading, by reason

Resolver Metrics:
  - title_resolutions_total: resolutions by winning strategy (or "not_found")
  - autocomplete_cache_lookups_total: suggestion cache hits and misses

Poster Metrics:
  - poster_lookups_total: lookups by source (cache, api, page) and result
  - poster_lookup_duration_seconds: external lookup latency by source
  - poster_cache_entries: resolved posters held in memory
  - poster_cache_persist_errors_total: failed cache saves

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: results through each breaker
  - circuit_breaker_consecutive_failures: current failure streak
  - circuit_breaker_state_transitions_total: state changes

# Usage

	start := time.Now()
	// ... handle request ...
	metrics.RecordAPIRequest("GET", "/api/v1/movies/{id}", "200", time.Since(start))

Helpers never block and are safe for concurrent use.
*/
package metrics
