// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"strings"

	"github.com/goccy/go-json"
)

// Entry is one element of a nested list column. Genres, keywords, languages
// and companies only populate Name; cast entries add Character and crew
// entries add Job and Department.
type Entry struct {
	Name       string `json:"name"`
	Character  string `json:"character,omitempty"`
	Job        string `json:"job,omitempty"`
	Department string `json:"department,omitempty"`

	hasName bool
}

// NestedList is the result of parsing a nested list column: either Parsed
// with its entries or Empty. Callers consume both cases the same way through
// Entries and Names.
type NestedList struct {
	entries []Entry
	parsed  bool
}

// Empty is the NestedList produced for blank or malformed input.
var Empty = NestedList{}

// Parsed reports whether the source decoded as a JSON array.
func (n NestedList) Parsed() bool { return n.parsed }

// Entries returns the decoded entries in source order.
func (n NestedList) Entries() []Entry { return n.entries }

// Len returns the number of entries.
func (n NestedList) Len() int { return len(n.entries) }

// Names returns the names of entries that carry a name field, in order.
func (n NestedList) Names() []string {
	names := make([]string, 0, len(n.entries))
	for _, e := range n.entries {
		if e.hasName {
			names = append(names, e.Name)
		}
	}
	return names
}

// ParseNested decodes a JSON array of objects. It never fails: blank input,
// invalid JSON or a non-array value all yield Empty. Array elements that are
// not objects are skipped; fields of unexpected type are treated as absent.
func ParseNested(raw string) NestedList {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Empty
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return Empty
	}

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		var fields map[string]any
		if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
			continue
		}
		var e Entry
		e.Name, e.hasName = stringField(fields, "name")
		e.Character, _ = stringField(fields, "character")
		e.Job, _ = stringField(fields, "job")
		e.Department, _ = stringField(fields, "department")
		entries = append(entries, e)
	}
	return NestedList{entries: entries, parsed: true}
}

func stringField(fields map[string]any, key string) (string, bool) {
	v, ok := fields[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
