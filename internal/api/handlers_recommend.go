// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/validation"
)

// Recommend handles POST /api/v1/recommend.
//
// @Summary Recommend similar movies
// @Description Resolves the title (exact, normalized, fuzzy, substring) and returns the k most similar movies.
// @Description A diversity between 0 and 1 reranks the results across genres.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body validation.RecommendRequest true "Title, k and optional diversity"
// @Success 200 {object} APIResponse{data=recommend.Recommendation} "Recommendations"
// @Failure 400 {object} APIResponse "Invalid request body"
// @Failure 404 {object} APIResponse "Title not found"
// @Router /recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req validation.RecommendRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		if errors.Is(err, ErrBodyTooLarge) {
			rw.Error(http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, err.Error())
			return
		}
		rw.BadRequest(err.Error())
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	var rec *recommend.Recommendation
	var err error
	if req.Diversity != nil {
		rec, err = h.service.RecommendDiverse(ctx, req.Title, req.K, *req.Diversity)
	} else {
		rec, err = h.service.RecommendByTitle(ctx, req.Title, req.K)
	}
	switch {
	case errors.Is(err, recommend.ErrNotFound):
		logging.Ctx(ctx).Debug().
			Str("query", sanitizeLogValue(req.Title)).
			Msg("title not resolved")
		rw.NotFound(fmt.Sprintf("Movie '%s' not found. Try searching from the suggestions.", strings.TrimSpace(req.Title)))
		return
	case err != nil:
		rw.InternalError(err)
		return
	}

	rw.SuccessWithCount(rec, len(rec.Results))
}

// Autocomplete handles GET /api/v1/autocomplete?q=.
//
// @Summary Title suggestions
// @Tags Recommendations
// @Produce json
// @Param q query string true "Partial title"
// @Success 200 {object} APIResponse "{\"suggestions\": [...]}"
// @Failure 400 {object} APIResponse "Missing q"
// @Router /autocomplete [get]
func (h *Handler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := validation.AutocompleteRequest{Query: r.URL.Query().Get("q")}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}

	suggestions := h.service.Autocomplete(req.Query)
	rw.SuccessWithCount(map[string][]string{"suggestions": suggestions}, len(suggestions))
}
