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

	"github.com/google/uuid"

	"github.com/tomtom215/moodatlas/internal/metrics"
	"github.com/tomtom215/moodatlas/internal/models"
)

// InsertGoal stores a new goal for the user.
func (db *DB) InsertGoal(ctx context.Context, goal *models.Goal) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("insert", "goals", start, err) }()

	if goal.ID == uuid.Nil {
		goal.ID = uuid.New()
	}
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = time.Now().UTC()
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO goals (id, user_id, title, completed, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		goal.ID.String(), goal.UserID, goal.Title, goal.Completed, goal.CreatedAt, goal.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert goal: %w", err)
	}
	return nil
}

// CompleteGoal marks the user's goal completed. Completing an already
// completed goal is a no-op.
func (db *DB) CompleteGoal(ctx context.Context, userID string, id uuid.UUID) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("update", "goals", start, err) }()

	result, err := db.conn.ExecContext(ctx,
		`UPDATE goals SET completed = TRUE, completed_at = ?
		WHERE id = ? AND user_id = ? AND completed = FALSE`,
		time.Now().UTC(), id.String(), userID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete goal: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		// Distinguish missing from already-completed for the caller.
		var exists bool
		err = db.conn.QueryRowContext(ctx,
			`SELECT COUNT(*) > 0 FROM goals WHERE id = ? AND user_id = ?`,
			id.String(), userID,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check goal existence: %w", err)
		}
		if !exists {
			return fmt.Errorf("goal %s not found", id)
		}
	}
	return nil
}

// ListGoals returns the user's goals, newest first.
func (db *DB) ListGoals(ctx context.Context, userID string) (goals []models.Goal, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "goals", start, err) }()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT CAST(id AS VARCHAR), user_id, title, completed, created_at, completed_at
		FROM goals
		WHERE user_id = ?
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	goals = []models.Goal{}
	for rows.Next() {
		var (
			goal        models.Goal
			idStr       string
			completedAt sql.NullTime
		)
		if err = rows.Scan(&idStr, &goal.UserID, &goal.Title, &goal.Completed, &goal.CreatedAt, &completedAt); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goal.ID, err = uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse goal id: %w", err)
		}
		if completedAt.Valid {
			goal.CompletedAt = &completedAt.Time
		}
		goals = append(goals, goal)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate goals: %w", err)
	}
	return goals, nil
}

// CompletedGoalCount returns how many goals the user has completed.
func (db *DB) CompletedGoalCount(ctx context.Context, userID string) (count int, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "goals", start, err) }()

	err = db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM goals WHERE user_id = ? AND completed = TRUE`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to query completed goal count: %w", err)
	}
	return count, nil
}
