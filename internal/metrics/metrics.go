// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15}, // recommend waits on poster lookups
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Model Metrics
	ModelBuildDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_build_duration_seconds",
			Help: "Duration of the startup catalogue and similarity build",
		},
	)

	CatalogueMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalogue_movies",
			Help: "Number of movies in the catalogue",
		},
	)

	ModelVocabularyTerms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_vocabulary_terms",
			Help: "Number of terms in the vectorizer vocabulary",
		},
	)

	CatalogueRowsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalogue_rows_skipped_total",
			Help: "Rows dropped while loading the dataset",
		},
		[]string{"reason"}, // "malformed", "duplicate_id"
	)

	// Resolver Metrics
	TitleResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "title_resolutions_total",
			Help: "Title resolutions by winning strategy",
		},
		[]string{"strategy"}, // "exact", "normalized", "fuzzy", "substring", "not_found"
	)

	AutocompleteCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autocomplete_cache_lookups_total",
			Help: "Autocomplete suggestion cache lookups",
		},
		[]string{"result"}, // "hit", "miss"
	)

	// Poster Metrics
	PosterLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poster_lookups_total",
			Help: "Poster lookups by source and result",
		},
		[]string{"source", "result"}, // source: cache, api, page; result: hit, miss, error
	)

	PosterLookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poster_lookup_duration_seconds",
			Help:    "Duration of external poster lookups in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"source"},
	)

	PosterCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "poster_cache_entries",
			Help: "Current number of cached poster URLs",
		},
	)

	PosterCachePersistErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "poster_cache_persist_errors_total",
			Help: "Total number of failed poster cache saves",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordModelBuild publishes the startup build summary.
func RecordModelBuild(duration time.Duration, movies, vocabulary int) {
	ModelBuildDuration.Set(duration.Seconds())
	CatalogueMovies.Set(float64(movies))
	ModelVocabularyTerms.Set(float64(vocabulary))
}

// RecordSkippedRows adds n dropped rows for reason. Zero is ignored.
func RecordSkippedRows(reason string, n int) {
	if n > 0 {
		CatalogueRowsSkipped.WithLabelValues(reason).Add(float64(n))
	}
}

// RecordTitleResolution counts a resolution by strategy.
func RecordTitleResolution(strategy string) {
	TitleResolutions.WithLabelValues(strategy).Inc()
}

// RecordAutocompleteLookup counts a suggestion cache hit or miss.
func RecordAutocompleteLookup(hit bool) {
	if hit {
		AutocompleteCacheLookups.WithLabelValues("hit").Inc()
		return
	}
	AutocompleteCacheLookups.WithLabelValues("miss").Inc()
}

// RecordPosterLookup counts a lookup. duration is observed only for external
// sources.
func RecordPosterLookup(source, result string, duration time.Duration) {
	PosterLookups.WithLabelValues(source, result).Inc()
	if source != "cache" {
		PosterLookupDuration.WithLabelValues(source).Observe(duration.Seconds())
	}
}
