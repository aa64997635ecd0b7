// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tomtom215/cinematch/internal/logging"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDataset(); err != nil {
		return err
	}
	if err := c.validateSimilarity(); err != nil {
		return err
	}
	if err := c.validateResolver(); err != nil {
		return err
	}
	if err := c.validatePoster(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDataset() error {
	if strings.TrimSpace(c.Dataset.MoviesPath) == "" {
		return fmt.Errorf("MOVIES_CSV is required")
	}
	if strings.TrimSpace(c.Dataset.CreditsPath) == "" {
		return fmt.Errorf("CREDITS_CSV is required")
	}
	return nil
}

func (c *Config) validateSimilarity() error {
	if c.Similarity.MaxFeatures < 1 {
		return fmt.Errorf("SIMILARITY_MAX_FEATURES must be positive, got %d", c.Similarity.MaxFeatures)
	}
	if c.Similarity.DefaultK < 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_K must be positive, got %d", c.Similarity.DefaultK)
	}
	if c.Similarity.MaxK < c.Similarity.DefaultK {
		return fmt.Errorf("RECOMMEND_MAX_K (%d) must be >= RECOMMEND_DEFAULT_K (%d)", c.Similarity.MaxK, c.Similarity.DefaultK)
	}
	if c.Similarity.Diversity < 0 || c.Similarity.Diversity > 1 {
		return fmt.Errorf("RECOMMEND_DIVERSITY must be between 0 and 1, got %g", c.Similarity.Diversity)
	}
	return nil
}

func (c *Config) validateResolver() error {
	r := c.Resolver
	if r.FuzzyThreshold < 0 || r.FuzzyThreshold > 100 {
		return fmt.Errorf("FUZZY_THRESHOLD must be between 0 and 100, got %d", r.FuzzyThreshold)
	}
	if r.AutocompleteFuzzyMin < 0 || r.AutocompleteFuzzyMin > 100 {
		return fmt.Errorf("AUTOCOMPLETE_FUZZY_MIN must be between 0 and 100, got %d", r.AutocompleteFuzzyMin)
	}
	if r.AutocompleteLimit < 1 {
		return fmt.Errorf("AUTOCOMPLETE_LIMIT must be positive, got %d", r.AutocompleteLimit)
	}
	if r.AutocompleteFuzzyPool < 0 {
		return fmt.Errorf("AUTOCOMPLETE_FUZZY_POOL must not be negative, got %d", r.AutocompleteFuzzyPool)
	}
	return nil
}

func (c *Config) validatePoster() error {
	p := c.Poster
	for name, raw := range map[string]string{
		"TMDB_API_BASE":   p.APIBaseURL,
		"TMDB_IMAGE_BASE": p.ImageBaseURL,
		"TMDB_PAGE_BASE":  p.PageBaseURL,
	} {
		if err := validateBaseURL(raw, name); err != nil {
			return err
		}
	}

	switch p.Store {
	case "file":
		if strings.TrimSpace(p.CachePath) == "" {
			return fmt.Errorf("POSTER_CACHE_FILE is required when POSTER_STORE=file")
		}
	case "badger":
		if strings.TrimSpace(p.BadgerPath) == "" {
			return fmt.Errorf("POSTER_BADGER_PATH is required when POSTER_STORE=badger")
		}
	default:
		return fmt.Errorf("POSTER_STORE must be 'file' or 'badger', got %q", p.Store)
	}

	if p.APITimeout <= 0 || p.PageTimeout <= 0 {
		return fmt.Errorf("POSTER_API_TIMEOUT and POSTER_PAGE_TIMEOUT must be positive")
	}
	if p.ScrapeRPS < 0 {
		return fmt.Errorf("POSTER_SCRAPE_RPS must not be negative")
	}
	if p.ScrapeRPS > 0 && p.ScrapeBurst < 1 {
		return fmt.Errorf("POSTER_SCRAPE_BURST must be positive when throttling is enabled")
	}
	if p.BreakerFailures < 1 {
		return fmt.Errorf("POSTER_BREAKER_FAILURES must be positive")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive")
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("LOG_FORMAT must be 'json' or 'console', got %q", c.Logging.Format)
	}
	return nil
}

// validateBaseURL accepts http(s) URLs with a host and optional path but no query.
func validateBaseURL(rawURL, fieldName string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %q", fieldName, parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}
	if parsed.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsed.RawQuery)
	}
	return nil
}
