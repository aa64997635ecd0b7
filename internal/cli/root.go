// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package cli is the offline command-line client. It builds the same model
// as the server from the local CSV files and queries it directly.
package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/poster"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// Version is set at build time.
var Version = "dev"

// needsPosters marks commands that always open the poster cache.
const needsPosters = "needs-posters"

// PosterCache is a poster resolver that owns a store.
type PosterCache interface {
	recommend.PosterResolver
	Close() error
}

// Options replace the loaders, mainly for tests. Nil fields use the
// server's loaders.
type Options struct {
	LoadConfig  func() (*config.Config, error)
	OpenPosters func(cfg config.PosterConfig) (PosterCache, error)
	LoadEngine  func(cfg *config.Config, posters recommend.PosterResolver) (*recommend.Engine, error)
}

func (o *Options) applyDefaults() {
	if o.LoadConfig == nil {
		o.LoadConfig = config.Load
	}
	if o.OpenPosters == nil {
		o.OpenPosters = func(cfg config.PosterConfig) (PosterCache, error) {
			return poster.New(cfg, &http.Client{})
		}
	}
	if o.LoadEngine == nil {
		o.LoadEngine = func(cfg *config.Config, posters recommend.PosterResolver) (*recommend.Engine, error) {
			engine, _, err := recommend.Load(cfg, posters)
			return engine, err
		}
	}
}

// app is the state shared by one command invocation.
type app struct {
	opts Options

	verbose     bool
	jsonOut     bool
	withPosters bool

	cfg     *config.Config
	posters PosterCache
	engine  *recommend.Engine
}

// NewRootCmd builds the command tree.
func NewRootCmd(opts Options) *cobra.Command {
	opts.applyDefaults()
	a := &app{opts: opts}

	root := &cobra.Command{
		Use:   "cinematch",
		Short: "Content-based movie recommendations from the TMDB 5000 dataset",
		Long: `Cinematch recommends movies that are similar in genre, keywords, cast,
director and plot to a movie you name.

The dataset location and poster settings come from the same configuration
as the server (config file, MOVIES_CSV, CREDITS_CSV, TMDB_API_KEY, ...).`,
		Version:           Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log model build details")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "print JSON instead of text")
	root.PersistentFlags().BoolVar(&a.withPosters, "posters", false, "resolve poster URLs (uses the poster cache and TMDB)")

	root.AddCommand(
		a.recommendCmd(),
		a.findCmd(),
		a.topCmd(),
		a.genresCmd(),
		a.showCmd(),
		a.posterCmd(),
	)
	return root
}

// Execute runs the CLI with the default loaders.
func Execute() error {
	return NewRootCmd(Options{}).Execute()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "completion" {
		return nil
	}

	level := "warn"
	if a.verbose {
		level = "info"
	}
	logging.Init(logging.Config{Level: level, Format: "console", Output: cmd.ErrOrStderr()})

	cfg, err := a.opts.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	a.cfg = cfg

	var resolver recommend.PosterResolver
	if a.withPosters || cmd.Annotations[needsPosters] == "true" {
		a.posters, err = a.opts.OpenPosters(cfg.Poster)
		if err != nil {
			return fmt.Errorf("open poster cache: %w", err)
		}
		resolver = a.posters
	}

	a.engine, err = a.opts.LoadEngine(cfg, resolver)
	if err != nil {
		return fmt.Errorf("build model: %w", err)
	}
	return nil
}

func (a *app) teardown(cmd *cobra.Command, _ []string) {
	if a.posters == nil {
		return
	}
	if err := a.posters.Close(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to close poster cache: %v\n", err)
	}
	a.posters = nil
}
