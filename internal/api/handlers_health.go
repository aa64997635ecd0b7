// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinematch/internal/middleware"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// HealthStatus is the body of GET /api/v1/health.
type HealthStatus struct {
	Status        string                     `json:"status"`
	Version       string                     `json:"version"`
	UptimeSeconds float64                    `json:"uptime_seconds"`
	Model         recommend.Status           `json:"model"`
	Endpoints     []middleware.EndpointStats `json:"endpoints"`
}

// Root handles GET /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]interface{}{
		"message":      "Movie Recommendation API",
		"movies_count": h.service.Status().Movies,
	})
}

// Health handles GET /api/v1/health.
//
// @Summary Service health
// @Description Returns the model size, poster cache size, uptime and per-endpoint latency percentiles
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus} "Health status"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	model := h.service.Status()
	status := "healthy"
	if model.Movies == 0 {
		status = "degraded"
	}
	WriteSuccess(w, r, HealthStatus{
		Status:        status,
		Version:       h.version,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Model:         model,
		Endpoints:     h.perfMon.Stats(),
	})
}

// Live handles GET /api/v1/health/live. It only proves the process serves.
//
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse "Process is serving"
// @Router /health/live [get]
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]string{"status": "alive"})
}

// Ready handles GET /api/v1/health/ready. The model is built before the
// server starts, so an empty model can only mean a bad dataset.
//
// @Summary Readiness check
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse "Model loaded"
// @Failure 503 {object} APIResponse "Data not loaded yet"
// @Router /health/ready [get]
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	model := h.service.Status()
	if model.Movies == 0 {
		WriteError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Data not loaded yet")
		return
	}
	WriteSuccess(w, r, map[string]interface{}{
		"status": "ready",
		"movies": model.Movies,
	})
}
