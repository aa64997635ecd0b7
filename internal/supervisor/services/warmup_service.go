// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// PosterWarmer resolves posters for a fixed set of popular movies. The
// recommend engine satisfies it through WarmPosters.
type PosterWarmer interface {
	WarmPosters(ctx context.Context) (requested, resolved int)
}

// WarmupService fills the poster cache once at startup so the first
// visitors of the landing pages do not wait on TMDB.
type WarmupService struct {
	warmer  PosterWarmer
	timeout time.Duration
	logger  zerolog.Logger
	name    string
}

// NewWarmupService bounds the whole warmup by timeout (default 2m).
func NewWarmupService(warmer PosterWarmer, timeout time.Duration, logger zerolog.Logger) *WarmupService {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &WarmupService{
		warmer:  warmer,
		timeout: timeout,
		logger:  logger.With().Str("service", "poster-warmup").Logger(),
		name:    "poster-warmup",
	}
}

// Serve runs the warmup once. It returns suture.ErrDoNotRestart when done,
// including when the warmup was cut short, since a missing poster is
// fetched on demand later anyway.
func (s *WarmupService) Serve(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	requested, resolved := s.warmer.WarmPosters(ctx)

	s.logger.Info().
		Int("requested", requested).
		Int("resolved", resolved).
		Dur("duration", time.Since(start)).
		Bool("cut_short", ctx.Err() != nil).
		Msg("poster warmup finished")

	return suture.ErrDoNotRestart
}

func (s *WarmupService) String() string {
	return s.name
}
