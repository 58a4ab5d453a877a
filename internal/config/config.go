// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

// Package config provides layered configuration for Moodatlas using Koanf v2.
//
// Precedence (highest wins): environment variables > config file > defaults.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the Moodatlas server.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Insight  InsightConfig  `koanf:"insight"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	API      APIConfig      `koanf:"api"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// DatabaseConfig holds DuckDB settings for the entry store.
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"`
}

// InsightConfig holds settings for the generative text service used by the
// insight engine. When Enabled is false (or the key is empty) the engine
// always uses the deterministic rule fallback.
type InsightConfig struct {
	Enabled   bool          `koanf:"enabled"`
	URL       string        `koanf:"url"`
	APIKey    string        `koanf:"api_key"`
	Model     string        `koanf:"model"`
	MaxTokens int           `koanf:"max_tokens"`
	Timeout   time.Duration `koanf:"timeout"`
}

// CatalogConfig holds settings for the external content catalog used by the
// recommendation engine. When Enabled is false the engine serves only the
// static bucketed tables.
type CatalogConfig struct {
	Enabled      bool          `koanf:"enabled"`
	AuthURL      string        `koanf:"auth_url"`
	APIURL       string        `koanf:"api_url"`
	ClientID     string        `koanf:"client_id"`
	ClientSecret string        `koanf:"client_secret"`
	Timeout      time.Duration `koanf:"timeout"`

	// MaxQueries bounds the number of search calls per recommendation to
	// respect catalog rate limits.
	MaxQueries int `koanf:"max_queries"`

	// ItemsPerQuery is the number of playlists requested per search call.
	ItemsPerQuery int `koanf:"items_per_query"`

	// RatePerSecond and RateBurst configure the client-side search limiter.
	RatePerSecond float64 `koanf:"rate_per_second"`
	RateBurst     int     `koanf:"rate_burst"`

	// TokenRefreshMargin refreshes the cached credential this long before
	// its reported expiry.
	TokenRefreshMargin time.Duration `koanf:"token_refresh_margin"`
}

// APIConfig holds HTTP API behavior settings.
type APIConfig struct {
	DefaultPageSize int           `koanf:"default_page_size"`
	MaxPageSize     int           `koanf:"max_page_size"`
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
	CORSOrigins     []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for inconsistent or unusable values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}

	if c.Insight.Enabled {
		if c.Insight.URL == "" {
			return fmt.Errorf("insight.url is required when insight.enabled is true")
		}
		if c.Insight.APIKey == "" {
			return fmt.Errorf("insight.api_key is required when insight.enabled is true")
		}
		if c.Insight.Timeout <= 0 {
			return fmt.Errorf("insight.timeout must be positive, got %s", c.Insight.Timeout)
		}
	}

	if c.Catalog.Enabled {
		if c.Catalog.ClientID == "" || c.Catalog.ClientSecret == "" {
			return fmt.Errorf("catalog.client_id and catalog.client_secret are required when catalog.enabled is true")
		}
		if c.Catalog.AuthURL == "" || c.Catalog.APIURL == "" {
			return fmt.Errorf("catalog.auth_url and catalog.api_url are required when catalog.enabled is true")
		}
		if c.Catalog.MaxQueries < 1 {
			return fmt.Errorf("catalog.max_queries must be at least 1, got %d", c.Catalog.MaxQueries)
		}
		if c.Catalog.ItemsPerQuery < 1 {
			return fmt.Errorf("catalog.items_per_query must be at least 1, got %d", c.Catalog.ItemsPerQuery)
		}
	}

	if c.API.DefaultPageSize < 1 || c.API.DefaultPageSize > c.API.MaxPageSize {
		return fmt.Errorf("api.default_page_size must be between 1 and api.max_page_size (%d), got %d",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}

	return nil
}
