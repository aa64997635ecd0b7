// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package resolve

import (
	"sort"
	"strings"
)

type scored struct {
	row   int
	score int
}

// Suggest returns up to AutocompleteLimit titles for a partial query.
// Titles containing the query come first in catalogue order; when there are
// enough of them the first page is returned alphabetically. Otherwise the
// list is topped up with fuzzy matches. Results are memoized per query and
// cached reports whether the memo was used.
func (r *Resolver) Suggest(query string) (titles []string, cached bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []string{}, false
	}
	if hit, ok := r.suggestions.Get(q); ok {
		return append([]string(nil), hit...), true
	}

	limit := r.opts.AutocompleteLimit
	var contains []string
	seen := make(map[string]struct{})
	for i, t := range r.lower {
		if strings.Contains(t, q) {
			contains = append(contains, r.titles[i])
			seen[r.titles[i]] = struct{}{}
		}
	}

	var out []string
	if len(contains) >= limit {
		out = append([]string(nil), contains[:limit]...)
		sort.Strings(out)
	} else {
		out = contains
		for _, s := range r.topFuzzy(q, r.opts.AutocompleteFuzzyPool) {
			if s.score < r.opts.AutocompleteFuzzyMin {
				continue
			}
			title := r.titles[s.row]
			if _, dup := seen[title]; dup {
				continue
			}
			seen[title] = struct{}{}
			out = append(out, title)
		}
		if len(out) > limit {
			out = out[:limit]
		}
	}
	if out == nil {
		out = []string{}
	}

	r.suggestions.Add(q, out)
	return append([]string(nil), out...), false
}

// topFuzzy returns the n best-scoring rows, highest score first, ties in
// catalogue order.
func (r *Resolver) topFuzzy(q string, n int) []scored {
	key := []rune(TokenSortKey(q))
	all := make([]scored, len(r.sortKeys))
	for i, t := range r.sortKeys {
		all[i] = scored{row: i, score: ratio(key, t)}
	}
	sort.SliceStable(all, func(a, b int) bool { return all[a].score > all[b].score })
	if len(all) > n {
		all = all[:n]
	}
	return all
}

// SuggestionStats reports suggestion cache hits and misses.
func (r *Resolver) SuggestionStats() (hits, misses int64) {
	return r.suggestions.Stats()
}
