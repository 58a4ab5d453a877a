// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

// Package models defines the shared data structures for Moodatlas.
//
// Core types:
//   - MetricSet: one submitted mood/energy/anxiety/sleep reading plus notes
//   - MoodEntry: a stored MetricSet with its derived insight and recommendations
//   - RecommendationBundle: primary/fallback recommendation results
//   - Achievement: a computed badge, earned or upcoming
//   - UserStats: aggregate inputs to achievement evaluation
//
// API envelope:
//   - APIResponse: standardized response wrapper for all HTTP endpoints
//   - APIError: structured error details
//
// This package has no dependencies on other internal packages so engines,
// storage, and handlers can all share it without import cycles.
package models
