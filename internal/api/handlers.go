// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"time"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/middleware"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// Recommender is the part of *recommend.Engine the handlers use.
type Recommender interface {
	RecommendByTitle(ctx context.Context, title string, k int) (*recommend.Recommendation, error)
	RecommendDiverse(ctx context.Context, title string, k int, diversity float64) (*recommend.Recommendation, error)
	ListTitles() []string
	TopRated(ctx context.Context) []recommend.MovieSummary
	Detail(ctx context.Context, movieID int) (*recommend.MovieDetail, error)
	Genres() []catalog.GenreCount
	ByGenre(ctx context.Context, genre string) ([]recommend.MovieSummary, error)
	Autocomplete(query string) []string
	Status() recommend.Status
}

var _ Recommender = (*recommend.Engine)(nil)

// Handler serves the API endpoints.
type Handler struct {
	service   Recommender
	perfMon   *middleware.PerformanceMonitor
	version   string
	startTime time.Time

	// requestTimeout bounds work that waits on poster lookups.
	requestTimeout time.Duration
}

// HandlerOptions are the optional Handler settings.
type HandlerOptions struct {
	Version        string
	RequestTimeout time.Duration
	PerfMon        *middleware.PerformanceMonitor
}

// NewHandler wraps service. A nil PerfMon gets a 1000-sample monitor.
func NewHandler(service Recommender, opts HandlerOptions) (*Handler, error) {
	if service == nil {
		return nil, ErrNilService
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.PerfMon == nil {
		opts.PerfMon = middleware.NewPerformanceMonitor(1000, middleware.DefaultSlowThreshold)
	}
	return &Handler{
		service:        service,
		perfMon:        opts.PerfMon,
		version:        opts.Version,
		startTime:      time.Now(),
		requestTimeout: opts.RequestTimeout,
	}, nil
}

// PerfMon returns the latency monitor fed by the router.
func (h *Handler) PerfMon() *middleware.PerformanceMonitor {
	return h.perfMon
}

// withTimeout applies requestTimeout when set.
func (h *Handler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.requestTimeout)
}
