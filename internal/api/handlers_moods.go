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

// submitMoodRequest is the POST /api/v1/moods body. Mood is a pointer so the
// required check can distinguish an omitted field from a legitimate 0.
// Optional metrics default to the scale midpoint when omitted.
type submitMoodRequest struct {
	UserID       string `json:"user_id" validate:"required,max=128"`
	Mood         *int   `json:"mood" validate:"required,min=0,max=10"`
	Energy       *int   `json:"energy" validate:"omitempty,min=0,max=10"`
	Anxiety      *int   `json:"anxiety" validate:"omitempty,min=0,max=10"`
	SleepQuality *int   `json:"sleep_quality" validate:"omitempty,min=0,max=10"`
	Notes        string `json:"notes" validate:"max=2000"`
}

// SubmitMood handles POST /api/v1/moods. The entry is stored first, then the
// insight and recommendation engines run and their results are attached. The
// two engines are independent: neither can fail the request, only
// persistence errors do.
func (h *Handler) SubmitMood(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req submitMoodRequest
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

	metricSet := models.MetricSet{
		Mood:         *req.Mood,
		Energy:       metricOrMidpoint(req.Energy),
		Anxiety:      metricOrMidpoint(req.Anxiety),
		SleepQuality: metricOrMidpoint(req.SleepQuality),
		Notes:        req.Notes,
	}

	entry := &models.MoodEntry{
		UserID:  req.UserID,
		Metrics: metricSet,
	}
	if err := h.store.InsertMoodEntry(r.Context(), entry); err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to store mood entry", err)
		return
	}

	insightText := h.insight.Produce(r.Context(), metricSet)
	bundle := h.recommend.Recommend(r.Context(), metricSet.Mood, metricSet.Energy, metricSet.Anxiety)

	if err := h.store.AttachAnalysis(r.Context(), entry.ID, insightText, &bundle); err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to attach analysis to mood entry", err)
		return
	}

	entry.Insight = insightText
	entry.Recommendations = &bundle

	respondData(w, http.StatusCreated, entry, start)
}

// ListMoods handles GET /api/v1/moods.
func (h *Handler) ListMoods(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "user_id query parameter is required", nil)
		return
	}

	limit := getIntParam(r, "limit", h.cfg.DefaultPageSize)
	if limit <= 0 {
		limit = h.cfg.DefaultPageSize
	}
	if limit > h.cfg.MaxPageSize {
		limit = h.cfg.MaxPageSize
	}

	entries, err := h.store.ListMoodEntries(r.Context(), userID, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list mood entries", err)
		return
	}

	respondData(w, http.StatusOK, entries, start)
}

func metricOrMidpoint(v *int) int {
	if v == nil {
		return models.MetricMidpoint
	}
	return *v
}
