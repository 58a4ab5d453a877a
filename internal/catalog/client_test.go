// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodatlas/internal/config"
)

const searchBody = `{
	"playlists": {
		"items": [
			{
				"name": "Calm Focus",
				"description": "Quiet instrumentals",
				"external_urls": {"spotify": "https://open.spotify.com/playlist/abc"},
				"images": [{"url": "https://i.scdn.co/image/abc"}],
				"tracks": {"total": 42}
			}
		]
	}
}`

// testServers starts a token endpoint and an API endpoint. tokenFn and
// searchFn control the responses per call index.
func testServers(t *testing.T, tokenFn, searchFn http.HandlerFunc) *Client {
	t.Helper()

	authSrv := httptest.NewServer(tokenFn)
	t.Cleanup(authSrv.Close)

	apiSrv := httptest.NewServer(searchFn)
	t.Cleanup(apiSrv.Close)

	cfg := &config.CatalogConfig{
		Enabled:            true,
		AuthURL:            authSrv.URL,
		APIURL:             apiSrv.URL,
		ClientID:           "client-id",
		ClientSecret:       "client-secret",
		Timeout:            5 * time.Second,
		RatePerSecond:      100,
		RateBurst:          100,
		TokenRefreshMargin: time.Minute,
	}
	return NewClient(cfg, zerolog.Nop())
}

func tokenHandler(tokens *atomic.Int32, token string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := tokens.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token": "%s-%d", "token_type": "Bearer", "expires_in": 3600}`, token, n)
	}
}

func TestClient_Search(t *testing.T) {
	t.Parallel()

	var tokens atomic.Int32
	client := testServers(t,
		tokenHandler(&tokens, "tok"),
		func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer tok-1" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if got := r.URL.Query().Get("q"); got != "calm meditation" {
				t.Errorf("query = %q, want %q", got, "calm meditation")
			}
			if got := r.URL.Query().Get("limit"); got != "3" {
				t.Errorf("limit = %q, want 3", got)
			}
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, searchBody)
		},
	)

	playlists, err := client.Search(context.Background(), "calm meditation", 3)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(playlists) != 1 {
		t.Fatalf("got %d playlists, want 1", len(playlists))
	}

	p := playlists[0]
	if p.Name != "Calm Focus" || p.ExternalURL != "https://open.spotify.com/playlist/abc" ||
		p.Image != "https://i.scdn.co/image/abc" || p.TracksTotal != 42 {
		t.Errorf("unexpected playlist mapping: %+v", p)
	}
	if tokens.Load() != 1 {
		t.Errorf("token endpoint hit %d times, want 1", tokens.Load())
	}
}

// A 401 on search must trigger exactly one refresh and one retry.
func TestClient_Search_RetriesOnceAfterUnauthorized(t *testing.T) {
	t.Parallel()

	var tokens, searches atomic.Int32
	client := testServers(t,
		tokenHandler(&tokens, "tok"),
		func(w http.ResponseWriter, r *http.Request) {
			if searches.Add(1) == 1 {
				// First search rejects the token even though it is fresh,
				// simulating server-side revocation.
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, searchBody)
		},
	)

	playlists, err := client.Search(context.Background(), "good vibes", 3)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(playlists) != 1 {
		t.Fatalf("got %d playlists, want 1", len(playlists))
	}
	if tokens.Load() != 2 {
		t.Errorf("token endpoint hit %d times, want 2 (initial + refresh)", tokens.Load())
	}
	if searches.Load() != 2 {
		t.Errorf("search endpoint hit %d times, want 2 (reject + retry)", searches.Load())
	}
}

// A second consecutive 401 must surface ErrAuth without further retries.
func TestClient_Search_AuthErrorAfterSecondUnauthorized(t *testing.T) {
	t.Parallel()

	var tokens, searches atomic.Int32
	client := testServers(t,
		tokenHandler(&tokens, "tok"),
		func(w http.ResponseWriter, r *http.Request) {
			searches.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
		},
	)

	_, err := client.Search(context.Background(), "good vibes", 3)
	if !errors.Is(err, ErrAuth) {
		t.Fatalf("Search() error = %v, want ErrAuth", err)
	}
	if searches.Load() != 2 {
		t.Errorf("search endpoint hit %d times, want exactly 2", searches.Load())
	}
}

func TestClient_Search_ServiceError(t *testing.T) {
	t.Parallel()

	var tokens atomic.Int32
	client := testServers(t,
		tokenHandler(&tokens, "tok"),
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
	)

	_, err := client.Search(context.Background(), "good vibes", 3)
	if !errors.Is(err, ErrService) {
		t.Fatalf("Search() error = %v, want ErrService", err)
	}
}

func TestClient_TokenErrorIsAuthError(t *testing.T) {
	t.Parallel()

	client := testServers(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		},
		func(w http.ResponseWriter, r *http.Request) {
			t.Error("search endpoint must not be hit when authentication fails")
		},
	)

	_, err := client.Search(context.Background(), "good vibes", 3)
	if !errors.Is(err, ErrAuth) {
		t.Fatalf("Search() error = %v, want ErrAuth", err)
	}
}

// Concurrent callers racing into an expired token slot must trigger only one
// refresh round trip.
func TestClient_ConcurrentTokenRefreshIsIdempotent(t *testing.T) {
	t.Parallel()

	var tokens atomic.Int32
	client := testServers(t,
		func(w http.ResponseWriter, r *http.Request) {
			tokens.Add(1)
			time.Sleep(20 * time.Millisecond) // widen the race window
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"access_token": "tok", "token_type": "Bearer", "expires_in": 3600}`)
		},
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, searchBody)
		},
	)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := client.Search(context.Background(), "calm", 3); err != nil {
				t.Errorf("Search() error = %v", err)
			}
		}()
	}
	wg.Wait()

	if tokens.Load() != 1 {
		t.Errorf("token endpoint hit %d times under concurrency, want 1", tokens.Load())
	}
}

func TestClient_TokenEndpointReceivesClientCredentials(t *testing.T) {
	t.Parallel()

	client := testServers(t,
		func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || user != "client-id" || pass != "client-secret" {
				t.Errorf("basic auth = %q/%q ok=%v, want configured credentials", user, pass, ok)
			}
			if err := r.ParseForm(); err != nil {
				t.Fatalf("ParseForm: %v", err)
			}
			if got := r.PostForm.Get("grant_type"); got != "client_credentials" {
				t.Errorf("grant_type = %q, want client_credentials", got)
			}
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"access_token": "tok", "token_type": "Bearer", "expires_in": 3600}`)
		},
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, searchBody)
		},
	)

	if err := client.Warm(context.Background()); err != nil {
		t.Fatalf("Warm() error = %v", err)
	}
}
