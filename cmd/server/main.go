// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/cinematch/docs" // Import generated swagger docs
	"github.com/tomtom215/cinematch/internal/api"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/middleware"
	"github.com/tomtom215/cinematch/internal/poster"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/supervisor"
	"github.com/tomtom215/cinematch/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Cinematch failed")
	}
}

// run returns only after shutdown, so deferred cleanup always happens
// before main exits.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("movies_csv", cfg.Dataset.MoviesPath).
		Str("credits_csv", cfg.Dataset.CreditsPath).
		Str("poster_store", cfg.Poster.Store).
		Bool("tmdb_api", cfg.Poster.APIKeyConfigured()).
		Msg("Starting Cinematch")

	posters, err := poster.New(cfg.Poster, &http.Client{})
	if err != nil {
		return fmt.Errorf("open poster cache: %w", err)
	}
	defer func() {
		if err := posters.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing poster cache")
		}
	}()

	engine, stats, err := recommend.Load(cfg, posters)
	if err != nil {
		return fmt.Errorf("build recommendation model: %w", err)
	}
	status := engine.Status()
	logging.Info().
		Int("movies", status.Movies).
		Int("vocabulary", status.Vocabulary).
		Int("skipped_rows", stats.SkippedRows).
		Int("duplicate_ids", stats.DuplicateIDs).
		Int("missing_credits", stats.MissingCredits).
		Int("posters_cached", status.Posters).
		Dur("load", stats.Duration).
		Dur("build", status.BuildDuration).
		Msg("Recommendation model ready")

	perfMon := middleware.NewPerformanceMonitor(1000, middleware.DefaultSlowThreshold)
	handler, err := api.NewHandler(engine, api.HandlerOptions{
		Version:        version,
		RequestTimeout: cfg.Server.Timeout,
		PerfMon:        perfMon,
	})
	if err != nil {
		return fmt.Errorf("create API handler: %w", err)
	}
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security)))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		// Recommend waits on poster lookups; leave room to write the body.
		WriteTimeout: cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	if cfg.Poster.Warmup {
		tree.AddDataService(services.NewWarmupService(engine, cfg.Poster.WarmupTimeout, logging.WithComponent("supervisor")))
		logging.Info().Dur("timeout", cfg.Poster.WarmupTimeout).Msg("Poster warmup service added")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree")
	if err := <-tree.ServeBackground(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Cinematch stopped")
	return nil
}
