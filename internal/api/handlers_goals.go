// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tomtom215/moodatlas/internal/models"
)

type createGoalRequest struct {
	UserID string `json:"user_id" validate:"required,max=128"`
	Title  string `json:"title" validate:"required,max=500"`
}

// CreateGoal handles POST /api/v1/goals.
func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req createGoalRequest
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

	goal := &models.Goal{
		UserID: req.UserID,
		Title:  req.Title,
	}
	if err := h.store.InsertGoal(r.Context(), goal); err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to store goal", err)
		return
	}

	respondData(w, http.StatusCreated, goal, start)
}

// ListGoals handles GET /api/v1/goals.
func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "user_id query parameter is required", nil)
		return
	}

	goals, err := h.store.ListGoals(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list goals", err)
		return
	}

	respondData(w, http.StatusOK, goals, start)
}

// CompleteGoal handles POST /api/v1/goals/{id}/complete.
func (h *Handler) CompleteGoal(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "user_id query parameter is required", nil)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Goal id must be a valid UUID", err)
		return
	}

	if err := h.store.CompleteGoal(r.Context(), userID, id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Goal not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to complete goal", err)
		return
	}

	respondData(w, http.StatusOK, map[string]interface{}{"id": id, "completed": true}, start)
}
