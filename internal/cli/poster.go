// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *app) posterCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "poster <movie id>...",
		Short:       "Resolve poster URLs, filling the poster cache",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{needsPosters: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int, len(args))
			for i, arg := range args {
				id, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("movie id must be an integer: %q", arg)
				}
				ids[i] = id
			}

			urls := make(map[string]string, len(ids))
			for _, id := range ids {
				urls[strconv.Itoa(id)] = a.engine.ResolvePoster(cmd.Context(), id)
			}

			out := cmd.OutOrStdout()
			if a.jsonOut {
				return writeJSON(out, urls)
			}
			for _, id := range ids {
				fmt.Fprintf(out, "%d\t%s\n", id, orDash(urls[strconv.Itoa(id)]))
			}
			return nil
		},
	}
}
