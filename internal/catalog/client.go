// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

// Package catalog implements the external music catalog client used by the
// recommendation engine's hybrid path.
//
// The client performs client-credentials authentication against the catalog's
// token endpoint and caches the resulting bearer token in a single
// process-wide slot. Refresh is mutex-guarded and idempotent: concurrent
// callers that race into a refresh re-check token validity under the lock, so
// only one network round trip happens per expiry. A search that comes back
// 401 invalidates the slot, refreshes once, and retries once.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/moodatlas/internal/config"
	"github.com/tomtom215/moodatlas/internal/metrics"
	"github.com/tomtom215/moodatlas/internal/models"
	"github.com/tomtom215/moodatlas/internal/resilience"
)

// Client talks to a Spotify-compatible catalog API.
type Client struct {
	authURL       string
	apiURL        string
	clientID      string
	clientSecret  string
	refreshMargin time.Duration

	httpClient *http.Client
	limiter    *rate.Limiter
	cb         *gobreaker.CircuitBreaker[[]models.Playlist]
	logger     zerolog.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient creates a catalog client from configuration.
func NewClient(cfg *config.CatalogConfig, logger zerolog.Logger) *Client {
	return &Client{
		authURL:       cfg.AuthURL,
		apiURL:        cfg.APIURL,
		clientID:      cfg.ClientID,
		clientSecret:  cfg.ClientSecret,
		refreshMargin: cfg.TokenRefreshMargin,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst),
		cb:      resilience.NewBreaker[[]models.Playlist]("catalog-search"),
		logger:  logger.With().Str("component", "catalog").Logger(),
	}
}

// Search queries the catalog for playlists matching query, returning at most
// limit results. A 401 from the API triggers exactly one token refresh and
// one retry; further auth failures return ErrAuth.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]models.Playlist, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("catalog rate limit wait: %w", err)
	}

	playlists, err := c.cb.Execute(func() ([]models.Playlist, error) {
		return c.search(ctx, query, limit)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: circuit open", ErrService)
		}
		return nil, err
	}
	return playlists, nil
}

func (c *Client) search(ctx context.Context, query string, limit int) ([]models.Playlist, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	playlists, status, err := c.doSearch(ctx, token, query, limit)
	if status == http.StatusUnauthorized {
		// Token expired server-side before our local expiry. Refresh once
		// and retry once.
		c.invalidateToken(token)
		token, err = c.token(ctx)
		if err != nil {
			return nil, err
		}
		playlists, status, err = c.doSearch(ctx, token, query, limit)
		if status == http.StatusUnauthorized {
			metrics.CatalogRequests.WithLabelValues("search", "error").Inc()
			return nil, fmt.Errorf("%w: request rejected after token refresh", ErrAuth)
		}
	}
	if err != nil {
		metrics.CatalogRequests.WithLabelValues("search", "error").Inc()
		return nil, err
	}

	metrics.CatalogRequests.WithLabelValues("search", "success").Inc()
	return playlists, nil
}

// doSearch performs one search round trip. The HTTP status is returned
// separately so the caller can distinguish auth rejection from other errors.
func (c *Client) doSearch(ctx context.Context, token, query string, limit int) ([]models.Playlist, int, error) {
	start := time.Now()
	defer func() {
		metrics.CatalogRequestDuration.WithLabelValues("search").Observe(time.Since(start).Seconds())
	}()

	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "playlist")
	params.Set("limit", strconv.Itoa(limit))

	searchURL := strings.TrimRight(c.apiURL, "/") + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrService, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, resp.StatusCode, nil
	}
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, resp.StatusCode, fmt.Errorf("%w: search returned status %d", ErrService, resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: failed to decode search response: %v", ErrService, err)
	}

	playlists := make([]models.Playlist, 0, len(parsed.Playlists.Items))
	for _, item := range parsed.Playlists.Items {
		playlists = append(playlists, models.Playlist{
			Name:        item.Name,
			Description: item.Description,
			ExternalURL: item.ExternalURLs.Spotify,
			Image:       firstImageURL(item.Images),
			TracksTotal: item.Tracks.Total,
		})
	}
	return playlists, resp.StatusCode, nil
}

// token returns a valid access token, refreshing if the cached one is absent
// or within the refresh margin of expiry. Safe for concurrent use.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-c.refreshMargin)) {
		return c.accessToken, nil
	}
	return c.refreshLocked(ctx)
}

// invalidateToken clears the cached token, but only if it is still the one
// the caller observed. A concurrent refresh may already have replaced it.
func (c *Client) invalidateToken(observed string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.accessToken == observed {
		c.accessToken = ""
		c.tokenExpiry = time.Time{}
	}
}

// refreshLocked fetches a fresh token. Caller must hold c.mu.
func (c *Client) refreshLocked(ctx context.Context) (string, error) {
	start := time.Now()
	defer func() {
		metrics.CatalogRequestDuration.WithLabelValues("token").Observe(time.Since(start).Seconds())
	}()

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.CatalogRequests.WithLabelValues("token", "error").Inc()
		return "", fmt.Errorf("%w: token request failed: %v", ErrService, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		metrics.CatalogRequests.WithLabelValues("token", "error").Inc()
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: token endpoint returned status %d", ErrAuth, resp.StatusCode)
	}

	var parsed tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		metrics.CatalogRequests.WithLabelValues("token", "error").Inc()
		return "", fmt.Errorf("%w: failed to decode token response: %v", ErrAuth, err)
	}
	if parsed.AccessToken == "" {
		metrics.CatalogRequests.WithLabelValues("token", "error").Inc()
		return "", fmt.Errorf("%w: token response contained no access token", ErrAuth)
	}

	c.accessToken = parsed.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(parsed.ExpiresIn) * time.Second)

	metrics.CatalogRequests.WithLabelValues("token", "success").Inc()
	metrics.CatalogTokenRefreshes.Inc()
	c.logger.Debug().Time("expiry", c.tokenExpiry).Msg("Catalog token refreshed")

	return c.accessToken, nil
}

// Warm pre-fetches a token so the first search does not pay the auth round
// trip. Errors are returned for logging but are not fatal.
func (c *Client) Warm(ctx context.Context) error {
	_, err := c.token(ctx)
	return err
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type searchResponse struct {
	Playlists struct {
		Items []searchPlaylist `json:"items"`
	} `json:"playlists"`
}

type searchPlaylist struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
	Images []searchImage `json:"images"`
	Tracks struct {
		Total int `json:"total"`
	} `json:"tracks"`
}

type searchImage struct {
	URL string `json:"url"`
}

func firstImageURL(images []searchImage) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].URL
}
