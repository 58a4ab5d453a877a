// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

package models

import (
	"time"

	"github.com/google/uuid"
)

// MetricMidpoint is the default for the optional 0-10 metrics when a
// submission omits them.
const MetricMidpoint = 5

// MetricSet is one mood submission: four 0-10 metrics plus free-text notes.
// Mood is required; the other three metrics default to the midpoint.
// A MetricSet is immutable once created - engines derive from it, never
// mutate it.
type MetricSet struct {
	Mood         int    `json:"mood"`
	Energy       int    `json:"energy"`
	Anxiety      int    `json:"anxiety"`
	SleepQuality int    `json:"sleep_quality"`
	Notes        string `json:"notes,omitempty"`
}

// MoodEntry is a stored MetricSet with the insight and recommendation bundle
// attached at submission time.
type MoodEntry struct {
	ID              uuid.UUID             `json:"id"`
	UserID          string                `json:"user_id"`
	Metrics         MetricSet             `json:"metrics"`
	Insight         string                `json:"insight,omitempty"`
	Recommendations *RecommendationBundle `json:"recommendations,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
}

// Goal is a user wellbeing goal. Completed goals feed achievement evaluation.
type Goal struct {
	ID          uuid.UUID  `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
