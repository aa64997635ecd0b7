// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"bytes"
	"encoding/csv"
	"testing"
)

var movieHeader = []string{
	"budget", "genres", "id", "keywords", "overview", "popularity", "production_companies",
	"release_date", "revenue", "runtime", "spoken_languages", "status", "tagline", "title",
	"vote_average", "vote_count",
}

var creditHeader = []string{"movie_id", "title", "cast", "crew"}

func csvBytes(t *testing.T, header []string, rows [][]string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		t.Fatalf("write header: %v", err)
	}
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("write rows: %v", err)
	}
	return &buf
}

func sampleMovies() [][]string {
	return [][]string{
		{
			"237000000", `[{"id": 28, "name": "Action"}, {"id": 878, "name": "Science Fiction"}]`, "19995",
			`[{"id": 1463, "name": "culture clash"}, {"id": 3388, "name": "space colony"}]`,
			"In the 22nd century, a paraplegic Marine is dispatched to the moon Pandora.", "150.43",
			`[{"name": "Ingenious Film Partners", "id": 289}]`, "2009-12-10", "2787965087", "162",
			`[{"iso_639_1": "en", "name": "English"}]`, "Released", "Enter the World of Pandora.", "Avatar",
			"7.2", "11800",
		},
		{
			"", `[{"id": 18, "name": "Drama"}]`, "597", "[]", "", "", "not json", "1997-11-18", "", "",
			"[]", "Released", "", "Titanic", "7.5", "7562",
		},
		{
			"1000", `[{"id": 18, "name": "Drama"}]`, "597", "[]", "duplicate", "", "[]", "", "", "",
			"[]", "", "", "Titanic Again", "1.0", "1",
		},
		{
			"0", `{broken`, "oops", "[]", "bad id row", "", "[]", "", "", "", "[]", "", "", "Nope", "", "",
		},
		{
			"0", `[{"id": 18, "name": "Drama"}, {"id": 10749, "name": "Romance"}]`, "100", "[]",
			"Low vote drama.", "1.5", "[]", "", "", "95.0", "[]", "", "", "Small Film", "NaN", "12",
		},
	}
}

func sampleCredits() [][]string {
	return [][]string{
		{
			"19995", "Avatar",
			`[{"cast_id": 242, "character": "Jake Sully", "name": "Sam Worthington", "order": 0},` +
				` {"character": "Neytiri", "name": "Zoe Saldana", "order": 1},` +
				` {"character": "Dr. Grace Augustine", "name": "Sigourney Weaver", "order": 2},` +
				` {"character": "Col. Quaritch", "name": "Stephen Lang", "order": 3}]`,
			`[{"department": "Editing", "job": "Editor", "name": "Stephen E. Rivkin"},` +
				` {"department": "Directing", "job": "Director", "name": "James Cameron"},` +
				` {"department": "Writing", "job": "Writer", "name": "James Cameron"},` +
				` {"department": "Writing", "job": "Writer", "name": "James Cameron"},` +
				` {"department": "Sound", "job": "Sound Designer", "name": "Christopher Boyes"}]`,
		},
		{"597", "Titanic", `[{"character": "Jack", "name": "Leonardo DiCaprio"}]`, `not json`},
	}
}

func loadSample(t *testing.T) (*Catalogue, LoadStats) {
	t.Helper()
	c, stats, err := Read(
		csvBytes(t, movieHeader, sampleMovies()),
		csvBytes(t, creditHeader, sampleCredits()),
	)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	return c, stats
}
