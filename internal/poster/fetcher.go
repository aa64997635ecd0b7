// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package poster

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

// Fetcher looks up a poster URL from one external source.
//
// Fetch returns ("", nil) when the source has no poster for the movie and a
// non-nil error when the source itself failed (transport error, 5xx,
// timeout, open circuit).
type Fetcher interface {
	Source() string
	Fetch(ctx context.Context, movieID int) (string, error)
}

const (
	maxAPIBody  = 1 << 20
	maxPageBody = 8 << 20
)

// upstreamError marks a response the breaker should count as a failure.
type upstreamError struct {
	source string
	status int
}

func (e *upstreamError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.source, e.status)
}

// doGet performs a GET with its own timeout. A 2xx body is passed to read.
// 5xx and 429 are failures; any other non-200 status is a miss.
func doGet(ctx context.Context, client *http.Client, source, reqURL string, timeout time.Duration, header http.Header, read func(io.Reader) (string, error)) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request failed: %w", err)
	}
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s request failed: %w", source, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return read(resp.Body)
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return "", &upstreamError{source: source, status: resp.StatusCode}
	default:
		return "", nil
	}
}

// APIFetcherConfig configures an APIFetcher.
type APIFetcherConfig struct {
	APIKey       string
	BaseURL      string // e.g. https://api.themoviedb.org/3
	ImageBaseURL string // e.g. https://image.tmdb.org/t/p/w500
	Timeout      time.Duration
	Breaker      BreakerSettings
}

// APIFetcher reads poster_path from the TMDB movie endpoint.
type APIFetcher struct {
	client    *http.Client
	cfg       APIFetcherConfig
	breaker   *breaker
	baseURL   string
	imageBase string
}

// NewAPIFetcher returns a fetcher using client (http.DefaultClient if nil).
func NewAPIFetcher(cfg APIFetcherConfig, client *http.Client) *APIFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &APIFetcher{
		client:    client,
		cfg:       cfg,
		breaker:   newBreaker("tmdb-api", cfg.Breaker),
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		imageBase: strings.TrimSuffix(cfg.ImageBaseURL, "/"),
	}
}

// Source implements Fetcher.
func (f *APIFetcher) Source() string { return "api" }

type movieResponse struct {
	PosterPath string `json:"poster_path"`
}

// Fetch implements Fetcher.
func (f *APIFetcher) Fetch(ctx context.Context, movieID int) (string, error) {
	reqURL := fmt.Sprintf("%s/movie/%d?api_key=%s", f.baseURL, movieID, url.QueryEscape(f.cfg.APIKey))
	return f.breaker.execute(func() (string, error) {
		return doGet(ctx, f.client, "tmdb api", reqURL, f.cfg.Timeout, nil, func(body io.Reader) (string, error) {
			var movie movieResponse
			if err := json.NewDecoder(io.LimitReader(body, maxAPIBody)).Decode(&movie); err != nil {
				// A 200 with junk is a miss, not an outage.
				return "", nil
			}
			if movie.PosterPath == "" {
				return "", nil
			}
			return f.imageBase + movie.PosterPath, nil
		})
	})
}

// posterPattern extracts the size-independent image path from a TMDB page.
var posterPattern = regexp.MustCompile(`https://media\.themoviedb\.org/t/p/w\d+(?:_and_h\d+_face)?(/[^"'>\s]+\.(?:jpg|png))`)

// ExtractPosterPath returns the first poster image path in html, or "".
func ExtractPosterPath(html []byte) string {
	m := posterPattern.FindSubmatch(html)
	if m == nil {
		return ""
	}
	return string(m[1])
}

// PageFetcherConfig configures a PageFetcher.
type PageFetcherConfig struct {
	BaseURL      string // e.g. https://www.themoviedb.org
	ImageBaseURL string
	UserAgent    string
	Timeout      time.Duration

	// RPS and Burst throttle page requests; RPS <= 0 disables throttling.
	RPS     float64
	Burst   int
	Breaker BreakerSettings
}

// PageFetcher scrapes the public movie page. It needs no credentials.
type PageFetcher struct {
	client    *http.Client
	cfg       PageFetcherConfig
	breaker   *breaker
	limiter   *rate.Limiter
	header    http.Header
	baseURL   string
	imageBase string
}

// NewPageFetcher returns a fetcher using client (http.DefaultClient if nil).
func NewPageFetcher(cfg PageFetcherConfig, client *http.Client) *PageFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	f := &PageFetcher{
		client:    client,
		cfg:       cfg,
		breaker:   newBreaker("tmdb-page", cfg.Breaker),
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		imageBase: strings.TrimSuffix(cfg.ImageBaseURL, "/"),
		header: http.Header{
			"User-Agent": []string{cfg.UserAgent},
			"Accept":     []string{"text/html,application/xhtml+xml"},
		},
	}
	if cfg.RPS > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		f.limiter = rate.NewLimiter(rate.Limit(cfg.RPS), burst)
	}
	return f
}

// Source implements Fetcher.
func (f *PageFetcher) Source() string { return "page" }

// Fetch implements Fetcher. The throttle wait counts against the lookup
// timeout, so a queued lookup gives up instead of waiting on its siblings.
func (f *PageFetcher) Fetch(ctx context.Context, movieID int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("page throttle: %w", err)
		}
	}

	reqURL := f.baseURL + "/movie/" + strconv.Itoa(movieID)
	return f.breaker.execute(func() (string, error) {
		return doGet(ctx, f.client, "tmdb page", reqURL, f.cfg.Timeout, f.header, func(body io.Reader) (string, error) {
			html, err := io.ReadAll(io.LimitReader(body, maxPageBody))
			if err != nil {
				return "", fmt.Errorf("read tmdb page: %w", err)
			}
			path := ExtractPosterPath(html)
			if path == "" {
				return "", nil
			}
			return f.imageBase + path, nil
		})
	})
}
