// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package poster

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// Cache is the process-wide poster URL cache. Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[int]string

	saveMu   sync.Mutex
	store    Store
	fetchers []Fetcher
}

// NewCache loads store and resolves misses through fetchers in order. A
// store that fails to load is logged and the cache starts empty.
func NewCache(store Store, fetchers ...Fetcher) *Cache {
	entries, err := store.Load()
	if err != nil {
		logging.Warn().Err(err).Msg("Poster cache unreadable, starting empty")
		entries = map[int]string{}
	}
	// Empty values mean unresolved and are not worth keeping.
	for id, url := range entries {
		if url == "" {
			delete(entries, id)
		}
	}
	metrics.PosterCacheEntries.Set(float64(len(entries)))

	return &Cache{
		entries:  entries,
		store:    store,
		fetchers: fetchers,
	}
}

// New builds the store and fetchers described by cfg. The API fetcher is
// only installed when an API key is configured.
func New(cfg config.PosterConfig, client *http.Client) (*Cache, error) {
	var store Store
	switch strings.ToLower(cfg.Store) {
	case "", "file":
		store = NewFileStore(cfg.CachePath)
	case "badger":
		bs, err := OpenBadgerStore(cfg.BadgerPath)
		if err != nil {
			return nil, err
		}
		store = bs
	default:
		return nil, fmt.Errorf("unknown poster store %q", cfg.Store)
	}

	breaker := BreakerSettings{
		ConsecutiveFailures: cfg.BreakerFailures,
		Timeout:             cfg.BreakerTimeout,
	}

	var fetchers []Fetcher
	if cfg.APIKeyConfigured() {
		fetchers = append(fetchers, NewAPIFetcher(APIFetcherConfig{
			APIKey:       strings.TrimSpace(cfg.APIKey),
			BaseURL:      cfg.APIBaseURL,
			ImageBaseURL: cfg.ImageBaseURL,
			Timeout:      cfg.APITimeout,
			Breaker:      breaker,
		}, client))
	} else {
		logging.Info().Msg("No TMDB API key, posters will be scraped from TMDB pages")
	}
	fetchers = append(fetchers, NewPageFetcher(PageFetcherConfig{
		BaseURL:      cfg.PageBaseURL,
		ImageBaseURL: cfg.ImageBaseURL,
		UserAgent:    cfg.UserAgent,
		Timeout:      cfg.PageTimeout,
		RPS:          cfg.ScrapeRPS,
		Burst:        cfg.ScrapeBurst,
		Breaker:      breaker,
	}, client))

	c := NewCache(store, fetchers...)
	logging.Info().
		Str("store", cfg.Store).
		Int("entries", c.Len()).
		Int("sources", len(fetchers)).
		Msg("Poster cache ready")
	return c, nil
}

// Len returns the number of cached posters.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Cached returns the cached URL for movieID without any external lookup.
func (c *Cache) Cached(movieID int) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	url, ok := c.entries[movieID]
	return url, ok && url != ""
}

// Resolve returns the poster URL for movieID, or "" when no source has one.
// It never fails.
func (c *Cache) Resolve(ctx context.Context, movieID int) string {
	if url, ok := c.Cached(movieID); ok {
		metrics.RecordPosterLookup("cache", "hit", 0)
		return url
	}
	metrics.RecordPosterLookup("cache", "miss", 0)

	log := logging.Ctx(ctx)
	for _, f := range c.fetchers {
		start := time.Now()
		url, err := f.Fetch(ctx, movieID)
		elapsed := time.Since(start)

		switch {
		case err != nil:
			metrics.RecordPosterLookup(f.Source(), "error", elapsed)
			event := log.Debug()
			if !isRejected(err) && !errors.Is(err, context.Canceled) {
				event = log.Warn()
			}
			event.Err(err).Int("movie_id", movieID).Str("source", f.Source()).Msg("Poster lookup failed")
			continue
		case url == "":
			metrics.RecordPosterLookup(f.Source(), "miss", elapsed)
			continue
		}

		metrics.RecordPosterLookup(f.Source(), "hit", elapsed)
		c.remember(ctx, movieID, url)
		return url
	}
	return ""
}

// remember records a resolved URL and persists the full cache. Persistence
// errors are logged and the in-memory entry is kept.
func (c *Cache) remember(ctx context.Context, movieID int, url string) {
	c.mu.Lock()
	c.entries[movieID] = url
	n := len(c.entries)
	c.mu.Unlock()
	metrics.PosterCacheEntries.Set(float64(n))

	c.saveMu.Lock()
	defer c.saveMu.Unlock()

	c.mu.RLock()
	snapshot := make(map[int]string, len(c.entries))
	for id, u := range c.entries {
		snapshot[id] = u
	}
	c.mu.RUnlock()

	if err := c.store.Save(snapshot); err != nil {
		metrics.PosterCachePersistErrors.Inc()
		logging.Ctx(ctx).Warn().Err(err).Int("movie_id", movieID).Msg("Failed to persist poster cache")
	}
}

// ResolveBatch resolves every id concurrently. result[i] belongs to ids[i].
func (c *Cache) ResolveBatch(ctx context.Context, ids []int) []string {
	urls := make([]string, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		if url, ok := c.Cached(id); ok {
			metrics.RecordPosterLookup("cache", "hit", 0)
			urls[i] = url
			continue
		}
		wg.Add(1)
		go func(i, id int) {
			defer wg.Done()
			urls[i] = c.Resolve(ctx, id)
		}(i, id)
	}
	wg.Wait()
	return urls
}

// Close releases the store.
func (c *Cache) Close() error {
	return c.store.Close()
}
