// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/recommend/reranking"
	"github.com/tomtom215/cinematch/internal/resolve"
	"github.com/tomtom215/cinematch/internal/similarity"
)

// PosterResolver supplies poster URLs. Implementations never fail; an empty
// string means no poster is available.
type PosterResolver interface {
	Resolve(ctx context.Context, movieID int) string
	ResolveBatch(ctx context.Context, movieIDs []int) []string
	Len() int
}

// Engine is the immutable recommendation context. It is safe for
// concurrent use.
type Engine struct {
	config Config
	logger zerolog.Logger

	catalogue *catalog.Catalogue
	matrix    *similarity.Matrix
	resolver  *resolve.Resolver
	posters   PosterResolver

	builtAt       time.Time
	buildDuration time.Duration
}

// Match is a resolved title.
type Match struct {
	Row      int
	Movie    *catalog.MovieRecord
	Strategy string
	Score    int
}

// NewEngine builds the similarity matrix and title index for cat. posters
// may be nil, in which case every poster URL is empty.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat *catalog.Catalogue, posters PosterResolver, cfg Config, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cat == nil || cat.Len() == 0 {
		return nil, errors.New("empty catalogue")
	}
	if posters == nil {
		posters = noPosters{}
	}

	start := time.Now()
	matrix, err := similarity.Build(cat.TagTexts(), cfg.Similarity)
	if err != nil {
		return nil, fmt.Errorf("build similarity matrix: %w", err)
	}

	e := &Engine{
		config:    cfg,
		logger:    logger.With().Str("component", "recommend").Logger(),
		catalogue: cat,
		matrix:    matrix,
		resolver:  resolve.New(cat.Titles(), cfg.Resolver),
		posters:   posters,
		builtAt:   time.Now(),
	}
	e.buildDuration = time.Since(start)

	metrics.RecordModelBuild(e.buildDuration, cat.Len(), matrix.Vocabulary().Size())
	e.logger.Info().
		Int("movies", cat.Len()).
		Int("vocabulary", matrix.Vocabulary().Size()).
		Dur("build_duration", e.buildDuration).
		Msg("recommendation model built")

	return e, nil
}

// FindMovie resolves a free-form title to a catalogue row.
func (e *Engine) FindMovie(title string) (Match, error) {
	m, err := e.resolver.Resolve(title)
	if err != nil {
		metrics.RecordTitleResolution("not_found")
		if errors.Is(err, resolve.ErrNotFound) {
			return Match{}, &NotFoundError{Query: title}
		}
		return Match{}, err
	}
	metrics.RecordTitleResolution(string(m.Strategy))
	return Match{
		Row:      m.Row,
		Movie:    e.catalogue.At(m.Row),
		Strategy: string(m.Strategy),
		Score:    m.Score,
	}, nil
}

// Recommend returns the k rows most similar to row, best first. k <= 0 uses
// the default; k is clamped to the catalogue size minus one.
func (e *Engine) Recommend(row, k int) ([]int, error) {
	if k <= 0 {
		k = e.config.Limits.DefaultK
	}
	neighbors, err := e.matrix.Neighbors(row, k)
	if err != nil {
		if errors.Is(err, similarity.ErrRowOutOfRange) {
			return nil, fmt.Errorf("%w: %d", ErrInvalidRow, row)
		}
		return nil, err
	}
	rows := make([]int, len(neighbors))
	for i, n := range neighbors {
		rows[i] = n.Row
	}
	return rows, nil
}

// ResolvePoster returns the poster URL for movieID, or "".
func (e *Engine) ResolvePoster(ctx context.Context, movieID int) string {
	return e.posters.Resolve(ctx, movieID)
}

// GetByID returns the record for movieID.
func (e *Engine) GetByID(movieID int) (*catalog.MovieRecord, error) {
	m, ok := e.catalogue.ByID(movieID)
	if !ok {
		return nil, idNotFound(movieID)
	}
	return m, nil
}

// ListTitles returns every title in catalogue order.
func (e *Engine) ListTitles() []string {
	return e.catalogue.Titles()
}

// RecommendByTitle resolves title and returns up to k similar movies with
// posters, diversified by the configured default. k is capped at
// Limits.MaxK.
func (e *Engine) RecommendByTitle(ctx context.Context, title string, k int) (*Recommendation, error) {
	return e.RecommendDiverse(ctx, title, k, e.config.Diversity)
}

// RecommendDiverse is RecommendByTitle with an explicit diversity in
// [0, 1]. Diversity 0 is the plain similarity order; higher values rerank a
// larger neighbour pool with MMR over genres.
func (e *Engine) RecommendDiverse(ctx context.Context, title string, k int, diversity float64) (*Recommendation, error) {
	if k <= 0 {
		k = e.config.Limits.DefaultK
	}
	if k > e.config.Limits.MaxK {
		k = e.config.Limits.MaxK
	}
	match, err := e.FindMovie(title)
	if err != nil {
		return nil, err
	}

	var rows []int
	if diversity > 0 {
		rows, err = e.diverseNeighbors(match.Row, k, diversity)
	} else {
		rows, err = e.Recommend(match.Row, k)
	}
	if err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().
		Str("query", title).
		Str("matched", match.Movie.Title).
		Str("strategy", match.Strategy).
		Float64("diversity", diversity).
		Int("results", len(rows)).
		Msg("recommendations computed")

	return &Recommendation{
		Query:        title,
		MatchedID:    match.Movie.ID,
		MatchedTitle: match.Movie.Title,
		Strategy:     match.Strategy,
		Diversity:    diversity,
		Results:      e.summaries(ctx, rows, NoOverview),
	}, nil
}

// diversityPool is how many neighbours per requested result are reranked.
const diversityPool = 3

func (e *Engine) diverseNeighbors(row, k int, diversity float64) ([]int, error) {
	neighbors, err := e.matrix.Neighbors(row, k*diversityPool)
	if err != nil {
		if errors.Is(err, similarity.ErrRowOutOfRange) {
			return nil, fmt.Errorf("%w: %d", ErrInvalidRow, row)
		}
		return nil, err
	}
	candidates := make([]reranking.Candidate, len(neighbors))
	for i, n := range neighbors {
		candidates[i] = reranking.Candidate{
			Row:    n.Row,
			Score:  float64(n.Score),
			Genres: e.catalogue.At(n.Row).Genres,
		}
	}

	picked := reranking.NewMMR(1-diversity).Rerank(candidates, k)
	rows := make([]int, len(picked))
	for i, c := range picked {
		rows[i] = c.Row
	}
	return rows, nil
}

// TopRated returns the best rated well-known movies.
func (e *Engine) TopRated(ctx context.Context) []MovieSummary {
	rows := e.catalogue.TopRated(e.config.Limits.TopRatedMinVotes, e.config.Limits.TopRatedLimit)
	return e.summaries(ctx, rows, "")
}

// Detail returns the full view of movieID including cast, key crew and
// poster.
func (e *Engine) Detail(ctx context.Context, movieID int) (*MovieDetail, error) {
	m, err := e.GetByID(movieID)
	if err != nil {
		return nil, err
	}
	return &MovieDetail{
		MovieSummary:        summarize(m, e.posters.Resolve(ctx, m.ID), ""),
		VoteCount:           m.VoteCount,
		Cast:                m.TopCast(e.config.Limits.DetailCastLimit),
		Crew:                m.KeyCrew(),
		Budget:              m.Budget,
		Revenue:             m.Revenue,
		SpokenLanguages:     nonNil(m.SpokenLanguages),
		ProductionCompanies: nonNil(m.ProductionCompanies),
		Status:              m.Status,
	}, nil
}

// Genres returns genre counts sorted by name.
func (e *Engine) Genres() []catalog.GenreCount {
	return e.catalogue.Genres()
}

// ByGenre returns the best rated movies in genre (case-insensitive).
func (e *Engine) ByGenre(ctx context.Context, genre string) ([]MovieSummary, error) {
	rows := e.catalogue.ByGenre(genre, e.config.Limits.GenreMinVotes, e.config.Limits.GenreLimit)
	if rows == nil {
		return nil, &NotFoundError{Genre: strings.TrimSpace(genre)}
	}
	return e.summaries(ctx, rows, ""), nil
}

// Autocomplete returns title suggestions for a partial query.
func (e *Engine) Autocomplete(query string) []string {
	titles, cached := e.resolver.Suggest(query)
	if strings.TrimSpace(query) != "" {
		metrics.RecordAutocompleteLookup(cached)
	}
	return titles
}

// Status reports model and cache sizes.
func (e *Engine) Status() Status {
	return Status{
		Movies:        e.catalogue.Len(),
		Vocabulary:    e.matrix.Vocabulary().Size(),
		Posters:       e.posters.Len(),
		BuildDuration: e.buildDuration,
		BuiltAt:       e.builtAt,
	}
}

// WarmPosters resolves posters for the top rated list and every genre
// list, one list at a time. It stops early when ctx is done.
func (e *Engine) WarmPosters(ctx context.Context) (requested, resolved int) {
	lists := [][]int{e.catalogue.TopRated(e.config.Limits.TopRatedMinVotes, e.config.Limits.TopRatedLimit)}
	for _, g := range e.catalogue.Genres() {
		lists = append(lists, e.catalogue.ByGenre(g.Name, e.config.Limits.GenreMinVotes, e.config.Limits.GenreLimit))
	}

	seen := make(map[int]struct{})
	for _, rows := range lists {
		if ctx.Err() != nil {
			break
		}
		ids := make([]int, 0, len(rows))
		for _, row := range rows {
			id := e.catalogue.At(row).ID
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
		for _, url := range e.posters.ResolveBatch(ctx, ids) {
			if url != "" {
				resolved++
			}
		}
		requested += len(ids)
	}
	return requested, resolved
}

// summaries builds list views for rows, resolving posters concurrently.
func (e *Engine) summaries(ctx context.Context, rows []int, emptyOverview string) []MovieSummary {
	ids := make([]int, len(rows))
	for i, row := range rows {
		ids[i] = e.catalogue.At(row).ID
	}
	posters := e.posters.ResolveBatch(ctx, ids)

	out := make([]MovieSummary, len(rows))
	for i, row := range rows {
		out[i] = summarize(e.catalogue.At(row), posters[i], emptyOverview)
	}
	return out
}

func summarize(m *catalog.MovieRecord, posterURL, emptyOverview string) MovieSummary {
	overview := m.Overview
	if overview == "" {
		overview = emptyOverview
	}
	return MovieSummary{
		ID:          m.ID,
		Title:       m.Title,
		Overview:    overview,
		PosterURL:   posterURL,
		VoteAverage: m.VoteAverage,
		ReleaseDate: m.ReleaseDate,
		Genres:      nonNil(m.Genres),
		Runtime:     m.Runtime,
		Tagline:     m.Tagline,
		Director:    m.DirectorName,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type noPosters struct{}

func (noPosters) Resolve(context.Context, int) string { return "" }

func (noPosters) ResolveBatch(_ context.Context, ids []int) []string { return make([]string, len(ids)) }

func (noPosters) Len() int { return 0 }
