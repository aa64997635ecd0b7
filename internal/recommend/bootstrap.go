// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// Load reads the configured dataset and builds an Engine. Any error is fatal
// for startup.
func Load(cfg *config.Config, posters PosterResolver) (*Engine, catalog.LoadStats, error) {
	cat, stats, err := catalog.Load(cfg.Dataset.MoviesPath, cfg.Dataset.CreditsPath)
	if err != nil {
		return nil, stats, fmt.Errorf("load dataset: %w", err)
	}
	metrics.RecordSkippedRows("malformed", stats.SkippedRows)
	metrics.RecordSkippedRows("duplicate_id", stats.DuplicateIDs)

	engine, err := NewEngine(cat, posters, ConfigFrom(cfg), logging.Logger())
	if err != nil {
		return nil, stats, err
	}
	return engine, stats, nil
}
