// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

package insight

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodatlas/internal/metrics"
	"github.com/tomtom215/moodatlas/internal/models"
)

// TextCompleter generates free-form text for a prompt. Implementations must
// honor context cancellation.
type TextCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Engine produces insight text for a mood entry. A nil completer means the
// generative service is not configured and the rule fallback is used directly.
type Engine struct {
	completer TextCompleter
	logger    zerolog.Logger
}

// NewEngine creates an insight engine. completer may be nil.
func NewEngine(completer TextCompleter, logger zerolog.Logger) *Engine {
	return &Engine{
		completer: completer,
		logger:    logger.With().Str("component", "insight").Logger(),
	}
}

// Produce returns insight text for the given metrics. It never returns an
// error or an empty string: any failure of the generative path falls back to
// the deterministic rule engine.
func (e *Engine) Produce(ctx context.Context, m models.MetricSet) string {
	if e.completer != nil {
		start := time.Now()
		text, err := e.completer.Complete(ctx, buildPrompt(m))
		metrics.InsightServiceDuration.Observe(time.Since(start).Seconds())
		if err == nil {
			if trimmed := strings.TrimSpace(text); trimmed != "" {
				metrics.InsightRequests.WithLabelValues("service").Inc()
				return trimmed
			}
			e.logger.Warn().Msg("Insight service returned empty completion, using fallback")
		} else {
			e.logger.Warn().Err(err).Msg("Insight service failed, using fallback")
		}
	}

	metrics.InsightRequests.WithLabelValues("fallback").Inc()
	return RuleInsight(m)
}

func buildPrompt(m models.MetricSet) string {
	return fmt.Sprintf(`As a supportive mental health assistant, provide a brief, encouraging analysis of this mood data:

Mood Score: %d/10
Energy Level: %d/10
Anxiety Level: %d/10
Sleep Quality: %d/10
Notes: %s

Please provide:
1. A gentle, supportive observation about their current state
2. One practical suggestion for improvement
3. A positive, encouraging message

Keep response under 150 words and maintain a warm, professional tone.`,
		m.Mood, m.Energy, m.Anxiety, m.SleepQuality, m.Notes)
}
