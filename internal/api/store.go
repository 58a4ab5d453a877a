// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

package api

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/moodatlas/internal/models"
)

// EntryStore is the persistence surface the handlers depend on. Implemented
// by database.DB; mocked in tests.
type EntryStore interface {
	InsertMoodEntry(ctx context.Context, entry *models.MoodEntry) error
	AttachAnalysis(ctx context.Context, id uuid.UUID, insight string, bundle *models.RecommendationBundle) error
	ListMoodEntries(ctx context.Context, userID string, limit int) ([]models.MoodEntry, error)
	EntryDates(ctx context.Context, userID string) ([]time.Time, error)
	MoodStats(ctx context.Context, userID string) (total int, avgMood float64, err error)

	InsertGoal(ctx context.Context, goal *models.Goal) error
	CompleteGoal(ctx context.Context, userID string, id uuid.UUID) error
	ListGoals(ctx context.Context, userID string) ([]models.Goal, error)
	CompletedGoalCount(ctx context.Context, userID string) (int, error)

	Ping(ctx context.Context) error
}
