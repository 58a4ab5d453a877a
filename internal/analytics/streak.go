// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

// Package analytics derives streaks and achievements from entry history.
// Everything here is a pure projection: nothing is persisted and every read
// recomputes from the underlying entries, so counters cannot drift.
package analytics

import (
	"sort"
	"time"
)

// Streak returns the user's current consecutive-day logging streak.
//
// Dates are reduced to distinct UTC calendar days sorted most-recent-first.
// The walk starts at the most recent logged day (not "today") and counts
// days that are each exactly one calendar day before the previous, stopping
// at the first gap. Returns 0 for an empty history.
func Streak(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := d.UTC().Truncate(24 * time.Hour)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 1
	for i := 1; i < len(days); i++ {
		if days[i-1].Sub(days[i]) != 24*time.Hour {
			break
		}
		streak++
	}
	return streak
}
