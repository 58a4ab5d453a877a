// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

package api

import (
	"context"

	"github.com/tomtom215/moodatlas/internal/config"
	"github.com/tomtom215/moodatlas/internal/models"
)

// Version is the application version, set at build time via ldflags.
var Version = "dev"

// InsightProducer generates insight text for a metric set.
type InsightProducer interface {
	Produce(ctx context.Context, m models.MetricSet) string
}

// Recommender builds recommendation bundles.
type Recommender interface {
	Recommend(ctx context.Context, mood, energy, anxiety int) models.RecommendationBundle
}

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	store     EntryStore
	insight   InsightProducer
	recommend Recommender
	cfg       *config.APIConfig

	insightEnabled bool
	catalogEnabled bool
}

// NewHandler creates the handler set.
func NewHandler(store EntryStore, insight InsightProducer, recommend Recommender, cfg *config.Config) *Handler {
	return &Handler{
		store:          store,
		insight:        insight,
		recommend:      recommend,
		cfg:            &cfg.API,
		insightEnabled: cfg.Insight.Enabled,
		catalogEnabled: cfg.Catalog.Enabled,
	}
}
