// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import "errors"

var (
	// ErrNilService is returned by NewHandler without a recommender.
	ErrNilService = errors.New("api: recommender service is required")

	// ErrBodyTooLarge is reported when a request body exceeds maxBodyBytes.
	ErrBodyTooLarge = errors.New("request body too large")
)
