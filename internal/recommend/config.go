// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/resolve"
	"github.com/tomtom215/cinematch/internal/similarity"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Similarity configures the vectorizer and matrix build.
	Similarity similarity.Options

	// Resolver configures title matching and autocomplete.
	Resolver resolve.Options

	// Limits contains operational limits.
	Limits LimitsConfig

	// Diversity is the default MMR diversity for RecommendByTitle.
	Diversity float64
}

// LimitsConfig bounds result sizes and browse filters.
type LimitsConfig struct {
	// DefaultK is used when callers pass k <= 0.
	DefaultK int

	// MaxK caps k for RecommendByTitle.
	MaxK int

	// TopRatedMinVotes filters TopRated to well-known movies.
	TopRatedMinVotes int
	TopRatedLimit    int

	// GenreMinVotes is preferred for ByGenre; ignored when no movie in the
	// genre reaches it.
	GenreMinVotes int
	GenreLimit    int

	// DetailCastLimit is the number of cast members in Detail.
	DetailCastLimit int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Similarity: similarity.DefaultOptions(),
		Limits: LimitsConfig{
			DefaultK:         5,
			MaxK:             50,
			TopRatedMinVotes: 1000,
			TopRatedLimit:    20,
			GenreMinVotes:    100,
			GenreLimit:       20,
			DetailCastLimit:  10,
		},
	}
}

// ConfigFrom maps the application configuration onto engine settings.
func ConfigFrom(cfg *config.Config) Config {
	c := DefaultConfig()
	c.Similarity.MaxFeatures = cfg.Similarity.MaxFeatures
	c.Similarity.DefaultK = cfg.Similarity.DefaultK
	c.Limits.DefaultK = cfg.Similarity.DefaultK
	c.Limits.MaxK = cfg.Similarity.MaxK
	c.Diversity = cfg.Similarity.Diversity
	c.Resolver = resolve.Options{
		FuzzyThreshold:        cfg.Resolver.FuzzyThreshold,
		AutocompleteLimit:     cfg.Resolver.AutocompleteLimit,
		AutocompleteFuzzyMin:  cfg.Resolver.AutocompleteFuzzyMin,
		AutocompleteFuzzyPool: cfg.Resolver.AutocompleteFuzzyPool,
	}
	return c
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Similarity.MaxFeatures < 1 {
		return fmt.Errorf("similarity.max_features must be positive, got %d", c.Similarity.MaxFeatures)
	}
	if c.Limits.DefaultK < 1 {
		return fmt.Errorf("limits.default_k must be positive, got %d", c.Limits.DefaultK)
	}
	if c.Limits.MaxK < c.Limits.DefaultK {
		return fmt.Errorf("limits.max_k (%d) must be >= default_k (%d)", c.Limits.MaxK, c.Limits.DefaultK)
	}
	if c.Limits.TopRatedLimit < 1 || c.Limits.GenreLimit < 1 {
		return fmt.Errorf("limits.top_rated_limit and genre_limit must be positive")
	}
	if c.Limits.TopRatedMinVotes < 0 || c.Limits.GenreMinVotes < 0 {
		return fmt.Errorf("limits min votes must be non-negative")
	}
	if c.Diversity < 0 || c.Diversity > 1 {
		return fmt.Errorf("diversity must be between 0 and 1, got %g", c.Diversity)
	}
	if c.Limits.DetailCastLimit < 0 {
		return fmt.Errorf("limits.detail_cast_limit must be non-negative, got %d", c.Limits.DetailCastLimit)
	}
	if c.Resolver.FuzzyThreshold < 0 || c.Resolver.FuzzyThreshold > 100 {
		return fmt.Errorf("resolver.fuzzy_threshold must be in [0, 100], got %d", c.Resolver.FuzzyThreshold)
	}
	return nil
}
