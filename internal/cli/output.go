// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/recommend"
)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeSummaries prints one movie per line.
func writeSummaries(w io.Writer, movies []recommend.MovieSummary, showPosters bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, m := range movies {
		line := fmt.Sprintf("%d.\t%s\t%s\t%.1f\t%s", i+1, m.Title, year(m.ReleaseDate), m.VoteAverage, strings.Join(m.Genres, ", "))
		if showPosters {
			line += "\t" + orDash(m.PosterURL)
		}
		fmt.Fprintln(tw, line)
	}
	return tw.Flush()
}

func year(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return "----"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
