// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package config loads Cinematch configuration from defaults, an optional
// YAML file and environment variables (in increasing order of precedence).
package config

import (
	"strings"
	"time"
)

// PlaceholderAPIKey is the sample value shipped in example env files. It is
// treated the same as an empty key.
const PlaceholderAPIKey = "your_tmdb_api_key_here"

// Config holds all application configuration.
type Config struct {
	Dataset    DatasetConfig    `koanf:"dataset"`
	Similarity SimilarityConfig `koanf:"similarity"`
	Resolver   ResolverConfig   `koanf:"resolver"`
	Poster     PosterConfig     `koanf:"poster"`
	Server     ServerConfig     `koanf:"server"`
	Security   SecurityConfig   `koanf:"security"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// DatasetConfig points at the two TMDB 5000 CSV exports.
type DatasetConfig struct {
	// MoviesPath is the per-movie metadata CSV. Env: MOVIES_CSV
	MoviesPath string `koanf:"movies_path"`

	// CreditsPath is the cast/crew CSV keyed by movie_id. Env: CREDITS_CSV
	CreditsPath string `koanf:"credits_path"`
}

// SimilarityConfig tunes the bag-of-words model.
type SimilarityConfig struct {
	// MaxFeatures caps the vocabulary size (default 5000).
	MaxFeatures int `koanf:"max_features"`

	// DefaultK is the neighbour count when callers pass k <= 0 (default 5).
	DefaultK int `koanf:"default_k"`

	// MaxK bounds k accepted from HTTP callers (default 50).
	MaxK int `koanf:"max_k"`

	// Diversity trades similarity for genre variety in recommendations,
	// from 0 (pure similarity, the default) to 1.
	Diversity float64 `koanf:"diversity"`
}

// ResolverConfig tunes title matching and autocomplete.
type ResolverConfig struct {
	// FuzzyThreshold is the minimum token-sort score (0-100) for a fuzzy hit.
	FuzzyThreshold int `koanf:"fuzzy_threshold"`

	// AutocompleteLimit is the number of suggestions returned.
	AutocompleteLimit int `koanf:"autocomplete_limit"`

	// AutocompleteFuzzyMin is the minimum score for fuzzy suggestions.
	AutocompleteFuzzyMin int `koanf:"autocomplete_fuzzy_min"`

	// AutocompleteFuzzyPool is how many top-scoring titles are considered.
	AutocompleteFuzzyPool int `koanf:"autocomplete_fuzzy_pool"`
}

// PosterConfig controls poster URL enrichment.
type PosterConfig struct {
	// APIKey is the TMDB v3 API key. Env: TMDB_API_KEY
	// Empty (or the placeholder) disables the API lookup.
	APIKey string `koanf:"api_key"`

	APIBaseURL   string `koanf:"api_base_url"`
	ImageBaseURL string `koanf:"image_base_url"`
	PageBaseURL  string `koanf:"page_base_url"`
	UserAgent    string `koanf:"user_agent"`

	// Store selects the cache backend: file or badger.
	Store string `koanf:"store"`

	// CachePath is the flat JSON cache file (store=file). Env: POSTER_CACHE_FILE
	CachePath string `koanf:"cache_path"`

	// BadgerPath is the badger directory (store=badger).
	BadgerPath string `koanf:"badger_path"`

	APITimeout  time.Duration `koanf:"api_timeout"`
	PageTimeout time.Duration `koanf:"page_timeout"`

	// ScrapeRPS throttles page scraping; 0 disables throttling.
	ScrapeRPS   float64 `koanf:"scrape_rps"`
	ScrapeBurst int     `koanf:"scrape_burst"`

	// BreakerFailures is the consecutive failure count that opens a breaker.
	BreakerFailures uint32        `koanf:"breaker_failures"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout"`

	// Warmup resolves posters for the landing lists in the background at
	// startup. Env: POSTER_WARMUP
	Warmup        bool          `koanf:"warmup"`
	WarmupTimeout time.Duration `koanf:"warmup_timeout"`
}

// APIKeyConfigured reports whether a usable TMDB API key is set.
func (p PosterConfig) APIKeyConfigured() bool {
	key := strings.TrimSpace(p.APIKey)
	return key != "" && key != PlaceholderAPIKey
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`

	// Timeout bounds request handling, including poster lookups.
	Timeout time.Duration `koanf:"timeout"`

	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins []string `koanf:"cors_origins"`

	// FrontendURL is appended to CORSOrigins when set. Env: FRONTEND_URL
	FrontendURL string `koanf:"frontend_url"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// AllowedOrigins returns CORSOrigins plus FrontendURL, without blanks or duplicates.
func (s SecurityConfig) AllowedOrigins() []string {
	seen := make(map[string]struct{}, len(s.CORSOrigins)+1)
	out := make([]string, 0, len(s.CORSOrigins)+1)
	for _, o := range append(append([]string{}, s.CORSOrigins...), s.FrontendURL) {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if _, dup := seen[o]; dup {
			continue
		}
		seen[o] = struct{}{}
		out = append(out, o)
	}
	return out
}

// LoggingConfig mirrors logging.Config for the loader.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from all sources and validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
