// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

package models

import "time"

// Achievement is a computed badge. Earned and upcoming achievements share the
// same shape; Progress/Target are carried on both for display purposes.
// Achievements are never persisted - they are re-derived on every read.
type Achievement struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Earned      bool    `json:"earned"`
	Progress    float64 `json:"progress"`
	Target      float64 `json:"target"`
}

// AchievementSet groups earned and upcoming achievements for one user.
type AchievementSet struct {
	Earned   []Achievement `json:"earned"`
	Upcoming []Achievement `json:"upcoming"`
}

// UserStats holds the aggregate inputs to achievement evaluation.
type UserStats struct {
	TotalEntries   int     `json:"total_entries"`
	CurrentStreak  int     `json:"current_streak"`
	CompletedGoals int     `json:"completed_goals"`
	AvgMood        float64 `json:"avg_mood"`
}

// AnalyticsSummary is the dashboard read-path payload. The streak is anchored
// to the user's most recent logged day, not to "today"; LastEntryDate lets
// clients apply their own display policy for stale streaks.
type AnalyticsSummary struct {
	Stats         UserStats  `json:"stats"`
	LastEntryDate *time.Time `json:"last_entry_date,omitempty"`
}
