// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinematch/internal/recommend"
)

func (a *app) recommendCmd() *cobra.Command {
	var k int
	var diversity float64
	cmd := &cobra.Command{
		Use:   "recommend <title>",
		Short: "List movies similar to a title",
		Long: `Resolve a title (exact, punctuation-insensitive, fuzzy, then substring)
and list the most similar movies.

Examples:
  cinematch recommend "The Dark Knight"
  cinematch recommend spiderman -k 10
  cinematch recommend avatr --json
  cinematch recommend "Toy Story" --diversity 0.5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			var rec *recommend.Recommendation
			var err error
			if cmd.Flags().Changed("diversity") {
				if diversity < 0 || diversity > 1 {
					return fmt.Errorf("--diversity must be between 0 and 1, got %g", diversity)
				}
				rec, err = a.engine.RecommendDiverse(cmd.Context(), title, k, diversity)
			} else {
				rec, err = a.engine.RecommendByTitle(cmd.Context(), title, k)
			}
			if errors.Is(err, recommend.ErrNotFound) {
				return fmt.Errorf("movie '%s' not found, try 'cinematch find'", strings.TrimSpace(title))
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.jsonOut {
				return writeJSON(out, rec)
			}
			fmt.Fprintf(out, "Because you liked %s (%s match):\n", rec.MatchedTitle, rec.Strategy)
			return writeSummaries(out, rec.Results, a.withPosters)
		},
	}
	cmd.Flags().IntVarP(&k, "k", "k", 0, "number of recommendations (default from config)")
	cmd.Flags().Float64Var(&diversity, "diversity", 0, "trade similarity for genre variety, 0 to 1 (default from config)")
	return cmd
}

func (a *app) findCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <partial title>",
		Short: "Suggest titles for a partial or misspelled query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			suggestions := a.engine.Autocomplete(query)

			out := cmd.OutOrStdout()
			if a.jsonOut {
				return writeJSON(out, map[string][]string{"suggestions": suggestions})
			}
			if len(suggestions) == 0 {
				fmt.Fprintln(out, "No matching titles.")
				return nil
			}
			for _, s := range suggestions {
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}
}
