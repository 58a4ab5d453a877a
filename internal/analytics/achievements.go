// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

package analytics

import "github.com/tomtom215/moodatlas/internal/models"

// achievementRule is one threshold row. Rows are evaluated independently and
// are not mutually exclusive.
type achievementRule struct {
	title       string
	description string
	target      float64
	value       func(models.UserStats) float64
}

// achievementRules is the fixed badge table, ordered for stable output.
var achievementRules = []achievementRule{
	{"First Step", "Logged your first mood entry", 1, totalEntries},
	{"Week Warrior", "Logged mood entries for 7 days", 7, totalEntries},
	{"Monthly Master", "Logged mood entries for 30 days", 30, totalEntries},
	{"Century Club", "Logged 100 mood entries", 100, totalEntries},
	{"Streak Starter", "Maintained a 3-day mood tracking streak", 3, currentStreak},
	{"Streak Master", "Maintained a 7-day mood tracking streak", 7, currentStreak},
	{"Consistency Champion", "Maintained a 30-day mood tracking streak", 30, currentStreak},
	{"Goal Getter", "Completed your first goal", 1, completedGoals},
	{"Achievement Unlocked", "Completed 5 goals", 5, completedGoals},
	{"Positive Vibes", "Maintained an average mood of 8+", 8.0, averageMood},
}

func totalEntries(s models.UserStats) float64   { return float64(s.TotalEntries) }
func currentStreak(s models.UserStats) float64  { return float64(s.CurrentStreak) }
func completedGoals(s models.UserStats) float64 { return float64(s.CompletedGoals) }
func averageMood(s models.UserStats) float64    { return s.AvgMood }

// EvaluateAchievements maps aggregate stats to earned and upcoming badges.
// Pure function of its input.
func EvaluateAchievements(stats models.UserStats) models.AchievementSet {
	set := models.AchievementSet{
		Earned:   []models.Achievement{},
		Upcoming: []models.Achievement{},
	}

	for _, rule := range achievementRules {
		current := rule.value(stats)
		a := models.Achievement{
			Title:       rule.title,
			Description: rule.description,
			Earned:      current >= rule.target,
			Progress:    current,
			Target:      rule.target,
		}
		if a.Earned {
			set.Earned = append(set.Earned, a)
		} else {
			set.Upcoming = append(set.Upcoming, a)
		}
	}
	return set
}
