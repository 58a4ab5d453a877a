// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

package insight

import (
	"strings"

	"github.com/tomtom215/moodatlas/internal/models"
)

// Keyword sets scanned case-insensitively in entry notes.
var (
	stressKeywords   = []string{"stress", "worried", "anxious", "overwhelmed"}
	positiveKeywords = []string{"happy", "good", "great", "excited", "grateful"}
)

// defaultEncouragements is used when no rule contributed an encouragement.
// Selection is deterministic per metric set so repeated analysis of the same
// entry yields identical text.
var defaultEncouragements = []string{
	"Remember that tracking your mood is a valuable step in understanding yourself better",
	"Every day is a new opportunity for growth and self-compassion",
	"You're taking positive steps by monitoring your mental health",
}

// RuleInsight produces a deterministic insight paragraph from metric
// thresholds and note keywords. It never returns an empty string.
func RuleInsight(m models.MetricSet) string {
	var insights, suggestions, encouragement []string

	switch {
	case m.Mood >= 8:
		insights = append(insights, "You're experiencing a positive mood today")
		encouragement = append(encouragement, "Keep nurturing this positive energy!")
	case m.Mood >= 6:
		insights = append(insights, "Your mood is in a stable, balanced range")
		suggestions = append(suggestions, "Consider what's working well for you and try to maintain these positive habits")
	case m.Mood >= 4:
		insights = append(insights, "Your mood seems a bit low today")
		suggestions = append(suggestions, "Try gentle activities like a short walk, listening to music, or connecting with a friend")
	default:
		insights = append(insights, "You're going through a challenging time")
		suggestions = append(suggestions, "Be gentle with yourself and consider reaching out for support if needed")
	}

	if m.Energy <= 3 {
		suggestions = append(suggestions, "Low energy detected - prioritize rest and gentle self-care activities")
	} else if m.Energy >= 8 {
		insights = append(insights, "Your energy levels are high")
	}

	if m.Anxiety >= 7 {
		suggestions = append(suggestions, "High anxiety noted - try deep breathing exercises or mindfulness techniques")
	} else if m.Anxiety <= 3 {
		insights = append(insights, "Your anxiety levels appear manageable today")
	}

	if m.SleepQuality <= 3 {
		suggestions = append(suggestions, "Poor sleep quality can impact mood - consider establishing a calming bedtime routine")
	} else if m.SleepQuality >= 8 {
		insights = append(insights, "Good sleep quality is supporting your overall well-being")
	}

	notes := strings.ToLower(m.Notes)
	if notes != "" && containsAny(notes, stressKeywords) {
		suggestions = append(suggestions, "Consider breaking down overwhelming tasks into smaller, manageable steps")
	} else if notes != "" && containsAny(notes, positiveKeywords) {
		encouragement = append(encouragement, "It's wonderful to see positive moments in your day!")
	}

	if len(encouragement) == 0 {
		idx := (m.Mood + m.Energy + m.Anxiety + m.SleepQuality) % len(defaultEncouragements)
		encouragement = append(encouragement, defaultEncouragements[idx])
	}

	if len(insights) > 2 {
		insights = insights[:2]
	}
	result := strings.Join(insights, ". ")
	if len(suggestions) > 0 {
		result += ". " + suggestions[0]
	}
	result += ". " + encouragement[0] + "."
	return result
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
