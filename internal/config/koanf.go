// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order; the first existing file wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/cinematch/config.yaml",
	"/etc/cinematch/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			MoviesPath:  "tmdb_5000_movies.csv",
			CreditsPath: "tmdb_5000_credits.csv",
		},
		Similarity: SimilarityConfig{
			MaxFeatures: 5000,
			DefaultK:    5,
			MaxK:        50,
		},
		Resolver: ResolverConfig{
			FuzzyThreshold:        70,
			AutocompleteLimit:     10,
			AutocompleteFuzzyMin:  60,
			AutocompleteFuzzyPool: 15,
		},
		Poster: PosterConfig{
			APIBaseURL:      "https://api.themoviedb.org/3",
			ImageBaseURL:    "https://image.tmdb.org/t/p/w500",
			PageBaseURL:     "https://www.themoviedb.org",
			UserAgent:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			Store:           "file",
			CachePath:       "poster_cache.json",
			BadgerPath:      "data/posters",
			APITimeout:      5 * time.Second,
			PageTimeout:     10 * time.Second,
			ScrapeRPS:       5,
			ScrapeBurst:     10,
			BreakerFailures: 5,
			BreakerTimeout:  30 * time.Second,
			Warmup:          true,
			WarmupTimeout:   2 * time.Minute,
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Security: SecurityConfig{
			CORSOrigins: []string{
				"http://localhost:3000",
				"http://localhost:5173",
				"http://127.0.0.1:3000",
				"http://127.0.0.1:5173",
			},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadWithKoanf loads configuration with layered sources:
//  1. built-in defaults
//  2. optional YAML file (CONFIG_PATH or DefaultConfigPaths)
//  3. environment variables
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated env values.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercased env names to koanf paths. Unmapped variables
// are ignored so unrelated environment does not leak into the config.
var envMappings = map[string]string{
	// Dataset
	"movies_csv":  "dataset.movies_path",
	"credits_csv": "dataset.credits_path",

	// Similarity
	"similarity_max_features": "similarity.max_features",
	"recommend_default_k":     "similarity.default_k",
	"recommend_max_k":         "similarity.max_k",
	"recommend_diversity":     "similarity.diversity",

	// Resolver
	"fuzzy_threshold":         "resolver.fuzzy_threshold",
	"autocomplete_limit":      "resolver.autocomplete_limit",
	"autocomplete_fuzzy_min":  "resolver.autocomplete_fuzzy_min",
	"autocomplete_fuzzy_pool": "resolver.autocomplete_fuzzy_pool",

	// Poster
	"tmdb_api_key":            "poster.api_key",
	"tmdb_api_base":           "poster.api_base_url",
	"tmdb_image_base":         "poster.image_base_url",
	"tmdb_page_base":          "poster.page_base_url",
	"poster_user_agent":       "poster.user_agent",
	"poster_store":            "poster.store",
	"poster_cache_file":       "poster.cache_path",
	"poster_badger_path":      "poster.badger_path",
	"poster_api_timeout":      "poster.api_timeout",
	"poster_page_timeout":     "poster.page_timeout",
	"poster_scrape_rps":       "poster.scrape_rps",
	"poster_scrape_burst":     "poster.scrape_burst",
	"poster_breaker_failures": "poster.breaker_failures",
	"poster_breaker_timeout":  "poster.breaker_timeout",
	"poster_warmup":           "poster.warmup",
	"poster_warmup_timeout":   "poster.warmup_timeout",

	// Server
	"http_host":        "server.host",
	"http_port":        "server.port",
	"server_timeout":   "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",

	// Security
	"cors_origins":        "security.cors_origins",
	"frontend_url":        "security.frontend_url",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps environment variable names to koanf paths:
//   - TMDB_API_KEY -> poster.api_key
//   - HTTP_PORT -> server.port
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
