// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/validation"
)

// Movies handles GET /api/v1/movies.
//
// @Summary List every title
// @Tags Movies
// @Produce json
// @Success 200 {object} APIResponse "{\"movies\": [...]}"
// @Router /movies [get]
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	titles := h.service.ListTitles()
	NewResponseWriter(w, r).SuccessWithCount(map[string][]string{"movies": titles}, len(titles))
}

// TopMovies handles GET /api/v1/movies/top.
//
// @Summary Best rated well-known movies
// @Description Movies with at least 1000 votes, top 20 by vote average
// @Tags Movies
// @Produce json
// @Success 200 {object} APIResponse{data=[]recommend.MovieSummary} "Top rated movies"
// @Router /movies/top [get]
func (h *Handler) TopMovies(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	movies := h.service.TopRated(ctx)
	NewResponseWriter(w, r).SuccessWithCount(movies, len(movies))
}

// MovieDetail handles GET /api/v1/movies/{id}.
//
// @Summary Movie detail
// @Description Full record with top cast, key crew and poster
// @Tags Movies
// @Produce json
// @Param id path int true "TMDB movie id"
// @Success 200 {object} APIResponse{data=recommend.MovieDetail} "Movie detail"
// @Failure 400 {object} APIResponse "Non-numeric id"
// @Failure 404 {object} APIResponse "Movie not found"
// @Router /movies/{id} [get]
func (h *Handler) MovieDetail(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := validation.MovieIDRequest{ID: chi.URLParam(r, "id")}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}
	id, err := strconv.Atoi(req.ID)
	if err != nil {
		rw.BadRequest("id must be an integer")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	detail, err := h.service.Detail(ctx, id)
	switch {
	case errors.Is(err, recommend.ErrNotFound):
		rw.NotFound("Movie not found")
		return
	case err != nil:
		rw.InternalError(err)
		return
	}
	rw.Success(detail)
}

// Genres handles GET /api/v1/genres.
//
// @Summary Genre counts
// @Tags Genres
// @Produce json
// @Success 200 {object} APIResponse "{\"genres\": [{\"name\": \"Action\", \"count\": 1154}]}"
// @Router /genres [get]
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	genres := h.service.Genres()
	NewResponseWriter(w, r).SuccessWithCount(map[string]interface{}{"genres": genres}, len(genres))
}

// MoviesByGenre handles GET /api/v1/genres/{genre}/movies.
//
// @Summary Best rated movies of a genre
// @Tags Genres
// @Produce json
// @Param genre path string true "Genre name, case-insensitive"
// @Success 200 {object} APIResponse{data=[]recommend.MovieSummary} "Movies of the genre"
// @Failure 404 {object} APIResponse "No movies found for genre"
// @Router /genres/{genre}/movies [get]
func (h *Handler) MoviesByGenre(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := validation.GenreRequest{Genre: chi.URLParam(r, "genre")}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	movies, err := h.service.ByGenre(ctx, req.Genre)
	switch {
	case errors.Is(err, recommend.ErrNotFound):
		rw.NotFound(fmt.Sprintf("No movies found for genre '%s'", strings.TrimSpace(req.Genre)))
		return
	case err != nil:
		rw.InternalError(err)
		return
	}
	rw.SuccessWithCount(movies, len(movies))
}
