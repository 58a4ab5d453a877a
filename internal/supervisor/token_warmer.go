// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

package supervisor

import (
	"context"
	"time"

	"github.com/tomtom215/moodatlas/internal/logging"
)

// TokenWarmer keeps the catalog client's access token warm so recommendation
// requests rarely pay the auth round trip. Refresh failures are logged and
// retried on the next tick; they never crash the service.
type TokenWarmer struct {
	warm     func(ctx context.Context) error
	interval time.Duration
}

// NewTokenWarmer creates a warmer calling warm every interval. A zero
// interval defaults to 30 minutes.
func NewTokenWarmer(warm func(ctx context.Context) error, interval time.Duration) *TokenWarmer {
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	return &TokenWarmer{warm: warm, interval: interval}
}

// Serve implements suture.Service.
func (t *TokenWarmer) Serve(ctx context.Context) error {
	warmCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	if err := t.warm(warmCtx); err != nil {
		logging.Warn().Err(err).Msg("Initial catalog token warm failed")
	}
	cancel()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			warmCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			if err := t.warm(warmCtx); err != nil {
				logging.Warn().Err(err).Msg("Catalog token warm failed")
			}
			cancel()
		}
	}
}

func (t *TokenWarmer) String() string {
	return "catalog-token-warmer"
}
