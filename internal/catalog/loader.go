// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/cinematch/internal/logging"
)

var (
	// ErrMissingColumn is returned when a dataset lacks a required column.
	ErrMissingColumn = errors.New("required column missing")

	// ErrNoRows is returned when the movies dataset has no usable rows.
	ErrNoRows = errors.New("movies dataset has no usable rows")
)

// credit holds the raw cast/crew JSON for one movie.
type credit struct {
	cast string
	crew string
}

// LoadStats summarises absorbed row-level problems.
type LoadStats struct {
	Rows           int
	SkippedRows    int
	DuplicateIDs   int
	MissingCredits int
	BadNested      int
	Duration       time.Duration
}

// Load reads the movies and credits CSV files and builds the Catalogue.
func Load(moviesPath, creditsPath string) (*Catalogue, LoadStats, error) {
	movies, err := os.Open(moviesPath)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("open movies dataset: %w", err)
	}
	defer movies.Close()

	credits, err := os.Open(creditsPath)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("open credits dataset: %w", err)
	}
	defer credits.Close()

	return Read(movies, credits)
}

// Read builds the Catalogue from CSV streams.
func Read(movies, credits io.Reader) (*Catalogue, LoadStats, error) {
	start := time.Now()
	log := logging.WithComponent("catalog")

	creditsByID, err := readCredits(credits)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("read credits dataset: %w", err)
	}

	r := newCSVReader(movies)
	header, err := r.Read()
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("read movies header: %w", err)
	}
	cols := indexHeader(header)
	for _, required := range []string{"id", "title"} {
		if _, ok := cols[required]; !ok {
			return nil, LoadStats{}, fmt.Errorf("movies dataset: %w: %s", ErrMissingColumn, required)
		}
	}

	var stats LoadStats
	records := make([]MovieRecord, 0, 5000)
	seen := make(map[int]struct{}, 5000)

	for line := 2; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			stats.SkippedRows++
			log.Debug().Err(err).Int("line", line).Msg("Skipping malformed movies row")
			continue
		}
		if err != nil {
			return nil, LoadStats{}, fmt.Errorf("read movies dataset: %w", err)
		}

		f := fields{cols: cols, row: row}
		id, err := strconv.Atoi(strings.TrimSpace(f.get("id")))
		if err != nil {
			stats.SkippedRows++
			log.Debug().Int("line", line).Str("id", f.get("id")).Msg("Skipping row with invalid id")
			continue
		}
		// New keeps the first row of a repeated id; only count them here.
		_, dup := seen[id]
		if dup {
			stats.DuplicateIDs++
			log.Debug().Int("id", id).Msg("Duplicate movie id, first row kept")
		}
		seen[id] = struct{}{}

		c, ok := creditsByID[id]
		if !ok && !dup {
			stats.MissingCredits++
		}
		rec, bad := buildRecord(id, f, c)
		if !dup {
			stats.BadNested += bad
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, stats, ErrNoRows
	}

	cat := New(records)
	stats.Rows = cat.Len()
	stats.Duration = time.Since(start)
	log.Info().
		Int("rows", stats.Rows).
		Int("skipped", stats.SkippedRows).
		Int("duplicates", stats.DuplicateIDs).
		Int("missing_credits", stats.MissingCredits).
		Int("bad_nested", stats.BadNested).
		Dur("duration", stats.Duration).
		Msg("Dataset loaded")

	return cat, stats, nil
}

func readCredits(src io.Reader) (map[int]credit, error) {
	r := newCSVReader(src)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := indexHeader(header)
	if _, ok := cols["movie_id"]; !ok {
		return nil, fmt.Errorf("%w: movie_id", ErrMissingColumn)
	}

	out := make(map[int]credit, 5000)
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			logging.Debug().Err(err).Msg("Skipping malformed credits row")
			continue
		}
		if err != nil {
			return nil, err
		}

		f := fields{cols: cols, row: row}
		id, err := strconv.Atoi(strings.TrimSpace(f.get("movie_id")))
		if err != nil {
			continue
		}
		if _, dup := out[id]; dup {
			continue
		}
		out[id] = credit{cast: f.get("cast"), crew: f.get("crew")}
	}
}

// buildRecord assembles a MovieRecord and reports how many nested columns
// failed to parse.
func buildRecord(id int, f fields, c credit) (MovieRecord, int) {
	bad := 0
	nested := func(raw string) NestedList {
		n := ParseNested(raw)
		if !n.Parsed() && strings.TrimSpace(raw) != "" {
			bad++
			logging.Debug().Int("id", id).Msg("Malformed nested field treated as empty")
		}
		return n
	}

	genres := nested(f.get("genres"))
	keywords := nested(f.get("keywords"))
	cast := nested(c.cast)
	crew := nested(c.crew)
	languages := nested(f.get("spoken_languages"))
	companies := nested(f.get("production_companies"))

	overview := f.get("overview")
	genreNames := genres.Names()
	director := directorName(crew)

	return MovieRecord{
		ID:                  id,
		Title:               f.get("title"),
		Overview:            overview,
		Tagline:             f.get("tagline"),
		Status:              f.get("status"),
		ReleaseDate:         f.get("release_date"),
		TagText:             BuildTagText(overview, genreNames, keywords.Names(), topCastNames(cast), director),
		Genres:              genreNames,
		DirectorName:        director,
		CastRaw:             cast.Entries(),
		CrewRaw:             crew.Entries(),
		VoteAverage:         parseFloat(f.get("vote_average")),
		VoteCount:           int(parseInt(f.get("vote_count"))),
		Popularity:          parseFloat(f.get("popularity")),
		Runtime:             parseFloat(f.get("runtime")),
		Budget:              parseInt(f.get("budget")),
		Revenue:             parseInt(f.get("revenue")),
		SpokenLanguages:     languages.Names(),
		ProductionCompanies: companies.Names(),
	}, bad
}

func newCSVReader(src io.Reader) *csv.Reader {
	r := csv.NewReader(src)
	r.FieldsPerRecord = -1
	return r
}

func indexHeader(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return cols
}

// fields gives name-based access to a CSV row; absent columns read as "".
type fields struct {
	cols map[string]int
	row  []string
}

func (f fields) get(name string) string {
	i, ok := f.cols[name]
	if !ok || i >= len(f.row) {
		return ""
	}
	return f.row[i]
}

// parseFloat returns 0 for blank, invalid, NaN or infinite values.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// parseInt accepts integers and integral floats ("1200.0"); anything else is 0.
func parseInt(s string) int64 {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	f := parseFloat(s)
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0
	}
	return int64(f)
}
