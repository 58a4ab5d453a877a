// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/moodatlas/internal/analytics"
	"github.com/tomtom215/moodatlas/internal/models"
)

// Analytics handles GET /api/v1/analytics. Streak and stats are recomputed
// from entry history on every read.
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "user_id query parameter is required", nil)
		return
	}

	summary, err := h.computeSummary(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to compute analytics", err)
		return
	}

	respondData(w, http.StatusOK, summary, start)
}

// Achievements handles GET /api/v1/achievements.
func (h *Handler) Achievements(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "user_id query parameter is required", nil)
		return
	}

	summary, err := h.computeSummary(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to compute achievements", err)
		return
	}

	respondData(w, http.StatusOK, analytics.EvaluateAchievements(summary.Stats), start)
}

// computeSummary aggregates the user's stats from entry history and goals.
func (h *Handler) computeSummary(ctx context.Context, userID string) (models.AnalyticsSummary, error) {
	total, avgMood, err := h.store.MoodStats(ctx, userID)
	if err != nil {
		return models.AnalyticsSummary{}, fmt.Errorf("mood stats: %w", err)
	}

	dates, err := h.store.EntryDates(ctx, userID)
	if err != nil {
		return models.AnalyticsSummary{}, fmt.Errorf("entry dates: %w", err)
	}

	completedGoals, err := h.store.CompletedGoalCount(ctx, userID)
	if err != nil {
		return models.AnalyticsSummary{}, fmt.Errorf("completed goals: %w", err)
	}

	summary := models.AnalyticsSummary{
		Stats: models.UserStats{
			TotalEntries:   total,
			CurrentStreak:  analytics.Streak(dates),
			CompletedGoals: completedGoals,
			AvgMood:        avgMood,
		},
	}
	if len(dates) > 0 {
		last := dates[0]
		summary.LastEntryDate = &last
	}
	return summary, nil
}
