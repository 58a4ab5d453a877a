// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

// Moodatlas server entry point.
//
// Startup order:
//  1. Configuration: koanf-layered defaults, YAML file, environment
//  2. Logging: zerolog initialized from configuration
//  3. Database: DuckDB entry store with schema initialization
//  4. Engines: insight (generative service + rule fallback) and
//     recommendation (static buckets + optional catalog blend)
//  5. Supervisor tree: background token warmer and HTTP server
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/moodatlas/internal/api"
	"github.com/tomtom215/moodatlas/internal/catalog"
	"github.com/tomtom215/moodatlas/internal/config"
	"github.com/tomtom215/moodatlas/internal/database"
	"github.com/tomtom215/moodatlas/internal/insight"
	"github.com/tomtom215/moodatlas/internal/logging"
	"github.com/tomtom215/moodatlas/internal/recommend"
	"github.com/tomtom215/moodatlas/internal/supervisor"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("db_path", cfg.Database.Path).
		Bool("insight_enabled", cfg.Insight.Enabled).
		Bool("catalog_enabled", cfg.Catalog.Enabled).
		Msg("Configuration loaded")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close database")
		}
	}()

	// Insight engine: generative completions when configured, rule fallback
	// otherwise. A nil completer disables the service path entirely.
	var completer insight.TextCompleter
	if cfg.Insight.Enabled {
		completer = insight.NewClient(&cfg.Insight)
	}
	insightEngine := insight.NewEngine(completer, logging.Logger())

	// Recommendation engine: catalog searcher is optional the same way.
	var catalogClient *catalog.Client
	var searcher recommend.Searcher
	if cfg.Catalog.Enabled {
		catalogClient = catalog.NewClient(&cfg.Catalog, logging.Logger())
		searcher = catalogClient
	}
	recommendEngine := recommend.NewEngine(searcher, logging.Logger(),
		recommend.WithQueryLimits(cfg.Catalog.MaxQueries, cfg.Catalog.ItemsPerQuery))

	handler := api.NewHandler(db, insightEngine, recommendEngine, cfg)
	router := api.NewRouter(handler, &cfg.API)

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if catalogClient != nil {
		tree.AddBackgroundService(supervisor.NewTokenWarmer(catalogClient.Warm, 0))
	}
	tree.AddAPIService(supervisor.NewHTTPServer(&cfg.Server, router))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}
