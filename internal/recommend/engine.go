// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

// Package recommend maps mood metrics to curated playlist recommendations.
//
// The engine buckets the mood score into five fixed ranges and returns the
// bucket's static playlists, optionally blended with live results from the
// external catalog. The static path never fails; the catalog path degrades
// silently to static-only on any error.
package recommend

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodatlas/internal/metrics"
	"github.com/tomtom215/moodatlas/internal/models"
)

// Searcher queries the external catalog. Implemented by catalog.Client.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]models.Playlist, error)
}

// maxQueries bounds catalog queries per recommendation to respect external
// rate limits.
const (
	defaultMaxQueries    = 2
	defaultItemsPerQuery = 3
)

// Engine produces recommendation bundles. A nil searcher disables the
// external path entirely.
type Engine struct {
	searcher      Searcher
	maxQueries    int
	itemsPerQuery int
	logger        zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithQueryLimits overrides the external query bounds.
func WithQueryLimits(maxQueries, itemsPerQuery int) Option {
	return func(e *Engine) {
		if maxQueries > 0 {
			e.maxQueries = maxQueries
		}
		if itemsPerQuery > 0 {
			e.itemsPerQuery = itemsPerQuery
		}
	}
}

// NewEngine creates a recommendation engine. searcher may be nil.
func NewEngine(searcher Searcher, logger zerolog.Logger, opts ...Option) *Engine {
	e := &Engine{
		searcher:      searcher,
		maxQueries:    defaultMaxQueries,
		itemsPerQuery: defaultItemsPerQuery,
		logger:        logger.With().Str("component", "recommend").Logger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recommend builds a bundle for the given metrics. It never returns an
// error: catalog failures degrade to the static result.
func (e *Engine) Recommend(ctx context.Context, mood, energy, anxiety int) models.RecommendationBundle {
	static := e.staticResult(mood, anxiety)

	external, ok := e.externalResult(ctx, mood, anxiety)
	if ok {
		metrics.RecommendationBundles.WithLabelValues("hybrid").Inc()
		return models.RecommendationBundle{
			Primary:  external,
			Fallback: &static,
			Hybrid:   true,
		}
	}

	metrics.RecommendationBundles.WithLabelValues("static").Inc()
	return models.RecommendationBundle{
		Primary: static,
		Hybrid:  false,
	}
}

// staticResult selects the bucket's curated lists, prepending the anxiety
// relief list when anxiety is high.
func (e *Engine) staticResult(mood, anxiety int) models.RecommendationResult {
	b := bucketFor(mood)

	playlists := make([]models.Playlist, 0, len(b.playlists)+1)
	if anxiety >= anxietyThreshold {
		playlists = append(playlists, anxietyReliefPlaylist)
	}
	playlists = append(playlists, b.playlists...)

	return models.RecommendationResult{
		Category:  b.name,
		Playlists: playlists,
		Source:    models.SourceGenerated,
	}
}

// externalResult queries the catalog with the bucket's terms (or the anxiety
// terms when anxiety is high). Returns ok=false when the catalog is not
// configured or no query yielded items.
func (e *Engine) externalResult(ctx context.Context, mood, anxiety int) (models.RecommendationResult, bool) {
	if e.searcher == nil {
		return models.RecommendationResult{}, false
	}

	terms := bucketFor(mood).queryTerms
	if anxiety >= anxietyThreshold {
		terms = anxietyQueryTerms
	}
	if len(terms) > e.maxQueries {
		terms = terms[:e.maxQueries]
	}

	var collected []models.Playlist
	for _, term := range terms {
		playlists, err := e.searcher.Search(ctx, term, e.itemsPerQuery)
		if err != nil {
			e.logger.Warn().Err(err).Str("query", term).Msg("Catalog search failed, continuing with remaining queries")
			continue
		}
		collected = append(collected, playlists...)
	}

	if len(collected) == 0 {
		return models.RecommendationResult{}, false
	}

	return models.RecommendationResult{
		Category:  "external",
		Playlists: collected,
		Source:    models.SourceExternal,
	}, true
}
