// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinematch/internal/recommend"
)

func (a *app) topCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "top",
		Short: "List the best rated well-known movies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			movies := a.engine.TopRated(cmd.Context())
			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), movies)
			}
			return writeSummaries(cmd.OutOrStdout(), movies, a.withPosters)
		},
	}
}

func (a *app) genresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genres [genre]",
		Short: "List genres, or the best rated movies of one genre",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				movies, err := a.engine.ByGenre(cmd.Context(), args[0])
				if errors.Is(err, recommend.ErrNotFound) {
					return fmt.Errorf("no movies found for genre '%s'", strings.TrimSpace(args[0]))
				}
				if err != nil {
					return err
				}
				if a.jsonOut {
					return writeJSON(out, movies)
				}
				return writeSummaries(out, movies, a.withPosters)
			}

			genres := a.engine.Genres()
			if a.jsonOut {
				return writeJSON(out, map[string]interface{}{"genres": genres})
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, g := range genres {
				fmt.Fprintf(tw, "%s\t%d\n", g.Name, g.Count)
			}
			return tw.Flush()
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <movie id>",
		Short: "Show a movie with cast and key crew",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("movie id must be an integer: %q", args[0])
			}
			detail, err := a.engine.Detail(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.jsonOut {
				return writeJSON(out, detail)
			}
			fmt.Fprintf(out, "%s (%s)  %.1f/10 from %d votes\n", detail.Title, year(detail.ReleaseDate), detail.VoteAverage, detail.VoteCount)
			if detail.Tagline != "" {
				fmt.Fprintf(out, "%q\n", detail.Tagline)
			}
			fmt.Fprintf(out, "Genres:   %s\n", strings.Join(detail.Genres, ", "))
			fmt.Fprintf(out, "Director: %s\n", orDash(detail.Director))
			if a.withPosters {
				fmt.Fprintf(out, "Poster:   %s\n", orDash(detail.PosterURL))
			}
			if detail.Overview != "" {
				fmt.Fprintf(out, "\n%s\n", detail.Overview)
			}
			if len(detail.Cast) > 0 {
				fmt.Fprintln(out, "\nCast:")
				for _, c := range detail.Cast {
					fmt.Fprintf(out, "  %s as %s\n", c.Name, orDash(c.Character))
				}
			}
			if len(detail.Crew) > 0 {
				fmt.Fprintln(out, "\nCrew:")
				for _, c := range detail.Crew {
					fmt.Fprintf(out, "  %s (%s)\n", c.Name, c.Job)
				}
			}
			return nil
		},
	}
}
