// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

package api

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status         string `json:"status"`
	Version        string `json:"version"`
	Database       string `json:"database"`
	InsightEnabled bool   `json:"insight_enabled"`
	CatalogEnabled bool   `json:"catalog_enabled"`
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	resp := healthResponse{
		Status:         "healthy",
		Version:        Version,
		Database:       "up",
		InsightEnabled: h.insightEnabled,
		CatalogEnabled: h.catalogEnabled,
	}

	status := http.StatusOK
	if err := h.store.Ping(r.Context()); err != nil {
		resp.Status = "degraded"
		resp.Database = "down"
		status = http.StatusServiceUnavailable
	}

	respondData(w, status, resp, start)
}
