// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/recommend"
)

type stubPosters struct{}

func (stubPosters) Resolve(_ context.Context, id int) string {
	return fmt.Sprintf("https://image.tmdb.org/t/p/w500/%d.jpg", id)
}

func (s stubPosters) ResolveBatch(ctx context.Context, ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = s.Resolve(ctx, id)
	}
	return out
}

func (stubPosters) Len() int { return 0 }

func testCatalogue() *catalog.Catalogue {
	return catalog.New([]catalog.MovieRecord{
		{ID: 1, Title: "Avatar", Overview: "A marine on an alien moon.", TagText: "space alien marine jungle",
			VoteAverage: 7.2, VoteCount: 11800, Genres: []string{"Action", "Science Fiction"}},
		{ID: 2, Title: "Aliens", Overview: "Ripley returns.", TagText: "space alien marine",
			VoteAverage: 7.7, VoteCount: 3220, Genres: []string{"Action", "Horror", "Science Fiction"}},
		{ID: 3, Title: "The Dark Knight", Overview: "Batman faces the Joker.", TagText: "batman joker gotham",
			VoteAverage: 8.2, VoteCount: 12000, Genres: []string{"Action", "Crime", "Drama"}},
		{ID: 4, Title: "Batman Begins", Overview: "Origins.", TagText: "batman gotham ninja",
			VoteAverage: 7.5, VoteCount: 7359, Genres: []string{"Action", "Crime"}, DirectorName: "Christopher Nolan",
			CastRaw: []catalog.Entry{{Name: "Christian Bale", Character: "Bruce Wayne"}}},
		{ID: 5, Title: "Amélie", TagText: "paris romance", VoteAverage: 7.8, VoteCount: 50,
			Genres: []string{"Comedy", "Romance"}},
		{ID: 6, Title: "Spider-Man", Overview: "Bitten.", TagText: "spider hero city",
			VoteAverage: 6.8, VoteCount: 5500, Genres: []string{"Fantasy", "Action"}},
	})
}

func newTestEngine(t *testing.T) *recommend.Engine {
	t.Helper()
	e, err := recommend.NewEngine(testCatalogue(), stubPosters{}, recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func newTestServer(t *testing.T, svc Recommender, mw *ChiMiddleware) http.Handler {
	t.Helper()
	h, err := NewHandler(svc, HandlerOptions{Version: "test"})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	if mw == nil {
		cfg := DefaultChiMiddlewareConfig()
		cfg.RateLimitDisabled = true
		mw = NewChiMiddleware(cfg)
	}
	return NewRouter(h, mw).SetupChi()
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *struct {
		RequestID string `json:"request_id"`
		Count     *int   `json:"count"`
	} `json:"meta"`
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if ct := rec.Header().Get("Content-Type"); strings.HasPrefix(ct, "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope: %v\n%s", err, rec.Body.String())
		}
	}
	return rec, env
}

func TestNewHandler_NilService(t *testing.T) {
	t.Parallel()

	if _, err := NewHandler(nil, HandlerOptions{}); !errors.Is(err, ErrNilService) {
		t.Errorf("NewHandler(nil) error = %v, want ErrNilService", err)
	}
}

func TestRecommend(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, newTestEngine(t), nil)

	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantCode    string
		wantMessage string
		wantCount   int
	}{
		{name: "exact", body: `{"title":"Avatar","k":2}`, wantStatus: http.StatusOK, wantCount: 2},
		{name: "default k", body: `{"title":"avatar"}`, wantStatus: http.StatusOK, wantCount: 5},
		{name: "normalized", body: `{"title":"SpiderMan","k":1}`, wantStatus: http.StatusOK, wantCount: 1},
		{
			name: "not found", body: `{"title":"  Zzzqqq  "}`,
			wantStatus: http.StatusNotFound, wantCode: ErrCodeNotFound,
			wantMessage: "Movie 'Zzzqqq' not found. Try searching from the suggestions.",
		},
		{
			name: "empty title", body: `{"title":""}`,
			wantStatus: http.StatusNotFound, wantCode: ErrCodeNotFound,
			wantMessage: "Movie '' not found. Try searching from the suggestions.",
		},
		{
			name: "blank title", body: `{"title":"   "}`,
			wantStatus: http.StatusNotFound, wantCode: ErrCodeNotFound,
			wantMessage: "Movie '' not found. Try searching from the suggestions.",
		},
		{
			name: "missing title", body: `{"k":3}`,
			wantStatus: http.StatusNotFound, wantCode: ErrCodeNotFound,
			wantMessage: "Movie '' not found. Try searching from the suggestions.",
		},
		{name: "title too long", body: `{"title":"` + strings.Repeat("a", 501) + `"}`, wantStatus: http.StatusBadRequest, wantCode: ErrCodeValidationFailed},
		{name: "k too large", body: `{"title":"Avatar","k":51}`, wantStatus: http.StatusBadRequest, wantCode: ErrCodeValidationFailed},
		{name: "diverse", body: `{"title":"Batman Begins","k":2,"diversity":0.5}`, wantStatus: http.StatusOK, wantCount: 2},
		{name: "diversity too large", body: `{"title":"Avatar","diversity":2}`, wantStatus: http.StatusBadRequest, wantCode: ErrCodeValidationFailed},
		{name: "bad json", body: `{"title":`, wantStatus: http.StatusBadRequest, wantCode: ErrCodeBadRequest},
		{name: "two objects", body: `{"title":"Avatar"}{"title":"Aliens"}`, wantStatus: http.StatusBadRequest, wantCode: ErrCodeBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, env := do(t, srv, http.MethodPost, "/api/v1/recommend", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d\n%s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantCode != "" {
				if env.Success || env.Error == nil || env.Error.Code != tt.wantCode {
					t.Fatalf("error = %+v, want code %s", env.Error, tt.wantCode)
				}
				if tt.wantMessage != "" && env.Error.Message != tt.wantMessage {
					t.Errorf("message = %q, want %q", env.Error.Message, tt.wantMessage)
				}
				return
			}

			var got recommend.Recommendation
			if err := json.Unmarshal(env.Data, &got); err != nil {
				t.Fatalf("decode data: %v", err)
			}
			if len(got.Results) != tt.wantCount {
				t.Errorf("len(results) = %d, want %d", len(got.Results), tt.wantCount)
			}
			if env.Meta == nil || env.Meta.Count == nil || *env.Meta.Count != tt.wantCount {
				t.Errorf("meta.count mismatch: %+v", env.Meta)
			}
			for _, m := range got.Results {
				if m.ID == got.MatchedID {
					t.Errorf("source movie %d returned as its own recommendation", m.ID)
				}
				if m.PosterURL == "" {
					t.Errorf("movie %d has no poster URL", m.ID)
				}
			}
		})
	}
}

func TestRecommend_Diversity(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, newTestEngine(t), nil)

	_, env := do(t, srv, http.MethodPost, "/api/v1/recommend", `{"title":"Batman Begins","k":2,"diversity":1}`)
	var got recommend.Recommendation
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if got.Diversity != 1 {
		t.Errorf("diversity = %v, want 1", got.Diversity)
	}
	if len(got.Results) != 2 || got.Results[0].Title != "The Dark Knight" || got.Results[1].Title != "Amélie" {
		t.Errorf("results = %+v, want The Dark Knight then Amélie", got.Results)
	}
}

func TestRecommend_MostSimilarFirst(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, newTestEngine(t), nil)

	_, env := do(t, srv, http.MethodPost, "/api/v1/recommend", `{"title":"Avatr","k":1}`)
	var got recommend.Recommendation
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if got.MatchedTitle != "Avatar" || got.Strategy != "fuzzy" {
		t.Errorf("matched %q via %q, want Avatar via fuzzy", got.MatchedTitle, got.Strategy)
	}
	if len(got.Results) != 1 || got.Results[0].Title != "Aliens" {
		t.Errorf("results = %+v, want Aliens", got.Results)
	}
}

func TestMovies(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, newTestEngine(t), nil)

	rec, env := do(t, srv, http.MethodGet, "/api/v1/movies", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got struct {
		Movies []string `json:"movies"`
	}
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	want := []string{"Avatar", "Aliens", "The Dark Knight", "Batman Begins", "Amélie", "Spider-Man"}
	if strings.Join(got.Movies, "|") != strings.Join(want, "|") {
		t.Errorf("movies = %v, want %v", got.Movies, want)
	}
}

func TestTopMovies(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, newTestEngine(t), nil)

	_, env := do(t, srv, http.MethodGet, "/api/v1/movies/top", "")
	var got []recommend.MovieSummary
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	var titles []string
	for _, m := range got {
		titles = append(titles, m.Title)
	}
	want := "The Dark Knight|Aliens|Batman Begins|Avatar|Spider-Man"
	if strings.Join(titles, "|") != want {
		t.Errorf("top = %v, want %s", titles, want)
	}
}

func TestMovieDetail(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, newTestEngine(t), nil)

	tests := []struct {
		path       string
		wantStatus int
		wantTitle  string
	}{
		{path: "/api/v1/movies/4", wantStatus: http.StatusOK, wantTitle: "Batman Begins"},
		{path: "/api/v1/movies/999", wantStatus: http.StatusNotFound},
		{path: "/api/v1/movies/abc", wantStatus: http.StatusBadRequest},
		{path: "/api/v1/movies/1.5", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			rec, env := do(t, srv, http.MethodGet, tt.path, "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d\n%s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantTitle == "" {
				return
			}
			var got recommend.MovieDetail
			if err := json.Unmarshal(env.Data, &got); err != nil {
				t.Fatalf("decode data: %v", err)
			}
			if got.Title != tt.wantTitle || got.Director != "Christopher Nolan" || len(got.Cast) != 1 {
				t.Errorf("detail = %+v", got)
			}
		})
	}
}

func TestGenres(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, newTestEngine(t), nil)

	_, env := do(t, srv, http.MethodGet, "/api/v1/genres", "")
	var got struct {
		Genres []catalog.GenreCount `json:"genres"`
	}
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(got.Genres) == 0 || got.Genres[0].Name != "Action" || got.Genres[0].Count != 5 {
		t.Errorf("genres = %+v, want Action(5) first", got.Genres)
	}
}

func TestMoviesByGenre(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, newTestEngine(t), nil)

	rec, env := do(t, srv, http.MethodGet, "/api/v1/genres/"+url.PathEscape("science fiction")+"/movies", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d\n%s", rec.Code, rec.Body.String())
	}
	var got []recommend.MovieSummary
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(got) != 2 || got[0].Title != "Aliens" || got[1].Title != "Avatar" {
		t.Errorf("science fiction = %+v", got)
	}

	rec, env = do(t, srv, http.MethodGet, "/api/v1/genres/Western/movies", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if env.Error.Message != "No movies found for genre 'Western'" {
		t.Errorf("message = %q", env.Error.Message)
	}
}

func TestAutocomplete(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, newTestEngine(t), nil)

	rec, env := do(t, srv, http.MethodGet, "/api/v1/autocomplete?q=bat", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(got.Suggestions) == 0 || got.Suggestions[0] != "Batman Begins" {
		t.Errorf("suggestions = %v, want Batman Begins first", got.Suggestions)
	}

	rec, env = do(t, srv, http.MethodGet, "/api/v1/autocomplete", "")
	if rec.Code != http.StatusBadRequest || env.Error.Code != ErrCodeValidationFailed {
		t.Errorf("missing q: status %d, error %+v", rec.Code, env.Error)
	}
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, newTestEngine(t), nil)

	for _, path := range []string{"/", "/api/v1/health", "/api/v1/health/live", "/api/v1/health/ready"} {
		rec, env := do(t, srv, http.MethodGet, path, "")
		if rec.Code != http.StatusOK || !env.Success {
			t.Errorf("%s: status %d success %v", path, rec.Code, env.Success)
		}
	}

	_, env := do(t, srv, http.MethodGet, "/api/v1/health", "")
	var got HealthStatus
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if got.Status != "healthy" || got.Version != "test" || got.Model.Movies != 6 {
		t.Errorf("health = %+v", got)
	}
}

type failingService struct{ Recommender }

func (failingService) Detail(context.Context, int) (*recommend.MovieDetail, error) {
	return nil, errors.New("disk on fire")
}

func (failingService) Status() recommend.Status { return recommend.Status{} }

func TestInternalErrorsAreHidden(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, failingService{}, nil)

	rec, env := do(t, srv, http.MethodGet, "/api/v1/movies/1", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(env.Error.Message, "disk") {
		t.Errorf("internal error leaked: %q", env.Error.Message)
	}

	rec, _ = do(t, srv, http.MethodGet, "/api/v1/health/ready", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("ready with empty model: status %d, want 503", rec.Code)
	}
}

func TestRoutingErrors(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, newTestEngine(t), nil)

	rec, env := do(t, srv, http.MethodGet, "/api/v1/nope", "")
	if rec.Code != http.StatusNotFound || env.Error == nil || env.Error.Code != ErrCodeNotFound {
		t.Errorf("unknown route: status %d, error %+v", rec.Code, env.Error)
	}

	rec, _ = do(t, srv, http.MethodGet, "/api/v1/recommend", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /recommend: status %d, want 405", rec.Code)
	}
}
