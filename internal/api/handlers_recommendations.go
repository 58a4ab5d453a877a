// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/moodatlas/internal/models"
)

type recommendationsRequest struct {
	Mood    *int `json:"mood" validate:"required,min=0,max=10"`
	Energy  *int `json:"energy" validate:"omitempty,min=0,max=10"`
	Anxiety *int `json:"anxiety" validate:"omitempty,min=0,max=10"`
}

// Recommendations handles POST /api/v1/recommendations. Builds a bundle on
// demand without storing anything.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req recommendationsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Request body is not valid JSON", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status:   "error",
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error:    apiErr,
		})
		return
	}

	bundle := h.recommend.Recommend(r.Context(),
		*req.Mood, metricOrMidpoint(req.Energy), metricOrMidpoint(req.Anxiety))

	respondData(w, http.StatusOK, bundle, start)
}
