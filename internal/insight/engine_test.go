// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

package insight

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodatlas/internal/models"
)

// mockCompleter implements TextCompleter for tests.
type mockCompleter struct {
	text      string
	err       error
	gotPrompt string
	callCount int
}

func (m *mockCompleter) Complete(_ context.Context, prompt string) (string, error) {
	m.callCount++
	m.gotPrompt = prompt
	return m.text, m.err
}

func TestEngine_Produce_ServicePath(t *testing.T) {
	t.Parallel()

	completer := &mockCompleter{text: "  You are doing well today.  "}
	engine := NewEngine(completer, zerolog.Nop())

	got := engine.Produce(context.Background(), models.MetricSet{Mood: 7, Energy: 6, Anxiety: 3, SleepQuality: 8, Notes: "steady week"})

	if got != "You are doing well today." {
		t.Errorf("Produce() = %q, want trimmed service text", got)
	}
	if completer.callCount != 1 {
		t.Errorf("completer called %d times, want 1", completer.callCount)
	}
	for _, want := range []string{"Mood Score: 7/10", "Energy Level: 6/10", "Anxiety Level: 3/10", "Sleep Quality: 8/10", "Notes: steady week"} {
		if !strings.Contains(completer.gotPrompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, completer.gotPrompt)
		}
	}
}

func TestEngine_Produce_FallsBack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		completer TextCompleter
	}{
		{"nil completer", nil},
		{"service error", &mockCompleter{err: errors.New("upstream unavailable")}},
		{"empty completion", &mockCompleter{text: "   "}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			engine := NewEngine(tt.completer, zerolog.Nop())
			got := engine.Produce(context.Background(), models.MetricSet{Mood: 9, Energy: 5, Anxiety: 5, SleepQuality: 5})

			if !strings.Contains(got, "positive mood") {
				t.Errorf("expected rule fallback text, got %q", got)
			}
		})
	}
}
