// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/moodatlas/internal/metrics"
	"github.com/tomtom215/moodatlas/internal/models"
)

// InsertMoodEntry stores a new mood entry. The insight and recommendation
// fields may be attached later via AttachAnalysis; storing the raw metrics
// first means a slow external call cannot lose the submission.
func (db *DB) InsertMoodEntry(ctx context.Context, entry *models.MoodEntry) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("insert", "mood_entries", start, err) }()

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	recJSON, err := marshalRecommendations(entry.Recommendations)
	if err != nil {
		return err
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO mood_entries
			(id, user_id, mood, energy, anxiety, sleep_quality, notes, insight, recommendations, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID.String(), entry.UserID,
		entry.Metrics.Mood, entry.Metrics.Energy, entry.Metrics.Anxiety, entry.Metrics.SleepQuality,
		entry.Metrics.Notes, entry.Insight, recJSON, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert mood entry: %w", err)
	}
	return nil
}

// AttachAnalysis updates the insight text and recommendation bundle of a
// stored entry.
func (db *DB) AttachAnalysis(ctx context.Context, id uuid.UUID, insight string, bundle *models.RecommendationBundle) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("update", "mood_entries", start, err) }()

	recJSON, err := marshalRecommendations(bundle)
	if err != nil {
		return err
	}

	result, err := db.conn.ExecContext(ctx,
		`UPDATE mood_entries SET insight = ?, recommendations = ? WHERE id = ?`,
		insight, recJSON, id.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to attach analysis: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("mood entry %s not found", id)
	}
	return nil
}

// ListMoodEntries returns the user's entries ordered most-recent-first,
// bounded by limit.
func (db *DB) ListMoodEntries(ctx context.Context, userID string, limit int) (entries []models.MoodEntry, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "mood_entries", start, err) }()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT CAST(id AS VARCHAR), user_id, mood, energy, anxiety, sleep_quality, notes, insight, recommendations, created_at
		FROM mood_entries
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query mood entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries = []models.MoodEntry{}
	for rows.Next() {
		var (
			entry   models.MoodEntry
			idStr   string
			notes   sql.NullString
			insight sql.NullString
			recJSON sql.NullString
		)
		if err = rows.Scan(&idStr, &entry.UserID,
			&entry.Metrics.Mood, &entry.Metrics.Energy, &entry.Metrics.Anxiety, &entry.Metrics.SleepQuality,
			&notes, &insight, &recJSON, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mood entry: %w", err)
		}

		entry.ID, err = uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse mood entry id: %w", err)
		}
		entry.Metrics.Notes = notes.String
		entry.Insight = insight.String

		if recJSON.Valid && recJSON.String != "" {
			var bundle models.RecommendationBundle
			if err = json.Unmarshal([]byte(recJSON.String), &bundle); err != nil {
				return nil, fmt.Errorf("failed to decode stored recommendations: %w", err)
			}
			entry.Recommendations = &bundle
		}

		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate mood entries: %w", err)
	}
	return entries, nil
}

// EntryDates returns the timestamps of all of the user's entries,
// most-recent-first. Used by the streak calculation.
func (db *DB) EntryDates(ctx context.Context, userID string) (dates []time.Time, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "mood_entries", start, err) }()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT created_at FROM mood_entries WHERE user_id = ? ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query entry dates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var t time.Time
		if err = rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan entry date: %w", err)
		}
		dates = append(dates, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entry dates: %w", err)
	}
	return dates, nil
}

// MoodStats returns the user's entry count and average mood score.
func (db *DB) MoodStats(ctx context.Context, userID string) (total int, avgMood float64, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "mood_entries", start, err) }()

	var avg sql.NullFloat64
	err = db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*), AVG(mood) FROM mood_entries WHERE user_id = ?`,
		userID,
	).Scan(&total, &avg)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query mood stats: %w", err)
	}
	return total, avg.Float64, nil
}

func marshalRecommendations(bundle *models.RecommendationBundle) (sql.NullString, error) {
	if bundle == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(bundle)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("failed to encode recommendations: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}
