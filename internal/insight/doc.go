// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

// Package insight produces supportive textual insights from a MetricSet.
//
// The engine wraps an optional generative text service with a deterministic
// rule-based fallback. Produce never fails outward: on missing configuration,
// timeout, or any service error it falls back to the rule engine and always
// returns usable text.
//
// The rule engine evaluates each metric dimension independently against fixed
// thresholds and scans notes for stress and positive keyword sets, then
// composes observations, one practical suggestion, and an encouragement into
// a short paragraph.
package insight
