// Moodatlas - Mood Journal Analytics and Wellbeing Insights
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodatlas

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moodatlas/internal/config"
	"github.com/tomtom215/moodatlas/internal/insight"
	"github.com/tomtom215/moodatlas/internal/models"
	"github.com/tomtom215/moodatlas/internal/recommend"
)

// mockStore implements EntryStore in memory.
type mockStore struct {
	entries   []models.MoodEntry
	goals     []models.Goal
	pingErr   error
	insertErr error
}

func (m *mockStore) InsertMoodEntry(_ context.Context, entry *models.MoodEntry) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	m.entries = append([]models.MoodEntry{*entry}, m.entries...)
	return nil
}

func (m *mockStore) AttachAnalysis(_ context.Context, id uuid.UUID, insightText string, bundle *models.RecommendationBundle) error {
	for i := range m.entries {
		if m.entries[i].ID == id {
			m.entries[i].Insight = insightText
			m.entries[i].Recommendations = bundle
			return nil
		}
	}
	return context.Canceled
}

func (m *mockStore) ListMoodEntries(_ context.Context, userID string, limit int) ([]models.MoodEntry, error) {
	out := []models.MoodEntry{}
	for _, e := range m.entries {
		if e.UserID == userID && len(out) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockStore) EntryDates(_ context.Context, userID string) ([]time.Time, error) {
	var dates []time.Time
	for _, e := range m.entries {
		if e.UserID == userID {
			dates = append(dates, e.CreatedAt)
		}
	}
	return dates, nil
}

func (m *mockStore) MoodStats(_ context.Context, userID string) (int, float64, error) {
	var total, sum int
	for _, e := range m.entries {
		if e.UserID == userID {
			total++
			sum += e.Metrics.Mood
		}
	}
	if total == 0 {
		return 0, 0, nil
	}
	return total, float64(sum) / float64(total), nil
}

func (m *mockStore) InsertGoal(_ context.Context, goal *models.Goal) error {
	if goal.ID == uuid.Nil {
		goal.ID = uuid.New()
	}
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = time.Now().UTC()
	}
	m.goals = append([]models.Goal{*goal}, m.goals...)
	return nil
}

func (m *mockStore) CompleteGoal(_ context.Context, userID string, id uuid.UUID) error {
	for i := range m.goals {
		if m.goals[i].ID == id && m.goals[i].UserID == userID {
			now := time.Now().UTC()
			m.goals[i].Completed = true
			m.goals[i].CompletedAt = &now
			return nil
		}
	}
	return errNotFound
}

var errNotFound = &notFoundError{}

type notFoundError struct{}

func (*notFoundError) Error() string { return "goal not found" }

func (m *mockStore) ListGoals(_ context.Context, userID string) ([]models.Goal, error) {
	out := []models.Goal{}
	for _, g := range m.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *mockStore) CompletedGoalCount(_ context.Context, userID string) (int, error) {
	var n int
	for _, g := range m.goals {
		if g.UserID == userID && g.Completed {
			n++
		}
	}
	return n, nil
}

func (m *mockStore) Ping(_ context.Context) error { return m.pingErr }

// newTestRouter wires a full router with external services disabled.
func newTestRouter(store *mockStore) http.Handler {
	cfg := &config.Config{
		API: config.APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
			RateLimitReqs:   1000,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
	}
	insightEngine := insight.NewEngine(nil, zerolog.Nop())
	recommendEngine := recommend.NewEngine(nil, zerolog.Nop())
	h := NewHandler(store, insightEngine, recommendEngine, cfg)
	return NewRouter(h, &cfg.API)
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, models.APIResponse) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not a valid envelope: %v\n%s", err, rec.Body.String())
	}
	return rec, resp
}

// Submitting a grateful, high-mood entry with both external services disabled
// must produce a rule insight with positive phrasing, a very_happy static
// bundle, and hybrid=false.
func TestSubmitMood_FullScenario(t *testing.T) {
	t.Parallel()

	store := &mockStore{}
	router := newTestRouter(store)

	rec, resp := doRequest(t, router, http.MethodPost, "/api/v1/moods",
		`{"user_id": "u1", "mood": 9, "energy": 8, "anxiety": 2, "sleep_quality": 7, "notes": "grateful today"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if resp.Status != "success" {
		t.Fatalf("envelope status = %q, want success", resp.Status)
	}

	data, err := json.Marshal(resp.Data)
	if err != nil {
		t.Fatalf("re-marshal data: %v", err)
	}
	var entry models.MoodEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("decode entry: %v", err)
	}

	if !strings.Contains(entry.Insight, "positive mood") {
		t.Errorf("insight = %q, want positive mood phrasing", entry.Insight)
	}
	if !strings.Contains(entry.Insight, "positive energy") && !strings.Contains(entry.Insight, "positive moments") {
		t.Errorf("insight = %q, want an encouragement clause", entry.Insight)
	}
	if entry.Recommendations == nil {
		t.Fatal("recommendations missing from response")
	}
	if entry.Recommendations.Primary.Category != "very_happy" {
		t.Errorf("category = %q, want very_happy", entry.Recommendations.Primary.Category)
	}
	if entry.Recommendations.Hybrid {
		t.Error("hybrid = true with catalog disabled")
	}

	if len(store.entries) != 1 {
		t.Fatalf("store has %d entries, want 1", len(store.entries))
	}
	if store.entries[0].Insight == "" {
		t.Error("analysis was not attached to the stored entry")
	}
}

func TestSubmitMood_OptionalMetricsDefaultToMidpoint(t *testing.T) {
	t.Parallel()

	store := &mockStore{}
	router := newTestRouter(store)

	rec, _ := doRequest(t, router, http.MethodPost, "/api/v1/moods", `{"user_id": "u1", "mood": 6}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	got := store.entries[0].Metrics
	if got.Energy != models.MetricMidpoint || got.Anxiety != models.MetricMidpoint || got.SleepQuality != models.MetricMidpoint {
		t.Errorf("optional metrics = %+v, want midpoint defaults", got)
	}
}

func TestSubmitMood_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"mood above range", `{"user_id": "u1", "mood": 11}`},
		{"mood below range", `{"user_id": "u1", "mood": -1}`},
		{"missing mood", `{"user_id": "u1"}`},
		{"missing user", `{"mood": 5}`},
		{"energy out of range", `{"user_id": "u1", "mood": 5, "energy": 12}`},
		{"not json", `mood=5`},
		{"unknown field", `{"user_id": "u1", "mood": 5, "intensity": 3}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := &mockStore{}
			router := newTestRouter(store)

			rec, resp := doRequest(t, router, http.MethodPost, "/api/v1/moods", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
			if resp.Error == nil {
				t.Fatal("error payload missing")
			}
			if len(store.entries) != 0 {
				t.Error("rejected submission must not be stored")
			}
		})
	}
}

// mood=0 is valid and must not be confused with a missing field.
func TestSubmitMood_ZeroMoodAccepted(t *testing.T) {
	t.Parallel()

	store := &mockStore{}
	router := newTestRouter(store)

	rec, _ := doRequest(t, router, http.MethodPost, "/api/v1/moods", `{"user_id": "u1", "mood": 0}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
}

func TestListMoods(t *testing.T) {
	t.Parallel()

	store := &mockStore{}
	router := newTestRouter(store)

	doRequest(t, router, http.MethodPost, "/api/v1/moods", `{"user_id": "u1", "mood": 5}`)
	doRequest(t, router, http.MethodPost, "/api/v1/moods", `{"user_id": "u2", "mood": 7}`)

	rec, resp := doRequest(t, router, http.MethodGet, "/api/v1/moods?user_id=u1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	data, _ := json.Marshal(resp.Data)
	var entries []models.MoodEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("decode entries: %v", err)
	}
	if len(entries) != 1 || entries[0].UserID != "u1" {
		t.Errorf("got %d entries for u1, want exactly their own", len(entries))
	}
}

func TestListMoods_RequiresUserID(t *testing.T) {
	t.Parallel()

	rec, _ := doRequest(t, newTestRouter(&mockStore{}), http.MethodGet, "/api/v1/moods", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRecommendations(t *testing.T) {
	t.Parallel()

	rec, resp := doRequest(t, newTestRouter(&mockStore{}), http.MethodPost, "/api/v1/recommendations",
		`{"mood": 2, "anxiety": 8}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	data, _ := json.Marshal(resp.Data)
	var bundle models.RecommendationBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		t.Fatalf("decode bundle: %v", err)
	}
	if bundle.Primary.Category != "low" {
		t.Errorf("category = %q, want low", bundle.Primary.Category)
	}
	if bundle.Primary.Playlists[0].Name != "Anxiety Relief" {
		t.Errorf("playlists[0] = %q, want anxiety relief first", bundle.Primary.Playlists[0].Name)
	}
}

func TestAnalyticsAndAchievements(t *testing.T) {
	t.Parallel()

	store := &mockStore{}
	router := newTestRouter(store)

	for i := 0; i < 7; i++ {
		doRequest(t, router, http.MethodPost, "/api/v1/moods", `{"user_id": "u1", "mood": 8}`)
	}

	rec, resp := doRequest(t, router, http.MethodGet, "/api/v1/analytics?user_id=u1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("analytics status = %d, want 200", rec.Code)
	}

	data, _ := json.Marshal(resp.Data)
	var summary models.AnalyticsSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.Stats.TotalEntries != 7 {
		t.Errorf("total entries = %d, want 7", summary.Stats.TotalEntries)
	}
	if summary.Stats.AvgMood != 8 {
		t.Errorf("avg mood = %v, want 8", summary.Stats.AvgMood)
	}
	// All entries share one calendar day.
	if summary.Stats.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1", summary.Stats.CurrentStreak)
	}
	if summary.LastEntryDate == nil {
		t.Error("last entry date missing")
	}

	rec, resp = doRequest(t, router, http.MethodGet, "/api/v1/achievements?user_id=u1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("achievements status = %d, want 200", rec.Code)
	}

	data, _ = json.Marshal(resp.Data)
	var set models.AchievementSet
	if err := json.Unmarshal(data, &set); err != nil {
		t.Fatalf("decode achievements: %v", err)
	}

	earned := map[string]bool{}
	for _, a := range set.Earned {
		earned[a.Title] = true
	}
	for _, want := range []string{"First Step", "Week Warrior", "Positive Vibes"} {
		if !earned[want] {
			t.Errorf("expected %q earned, got %v", want, set.Earned)
		}
	}
}

func TestGoalsLifecycle(t *testing.T) {
	t.Parallel()

	store := &mockStore{}
	router := newTestRouter(store)

	rec, resp := doRequest(t, router, http.MethodPost, "/api/v1/goals", `{"user_id": "u1", "title": "Meditate daily"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", rec.Code)
	}

	data, _ := json.Marshal(resp.Data)
	var goal models.Goal
	if err := json.Unmarshal(data, &goal); err != nil {
		t.Fatalf("decode goal: %v", err)
	}

	rec, _ = doRequest(t, router, http.MethodPost, "/api/v1/goals/"+goal.ID.String()+"/complete?user_id=u1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("complete status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	rec, _ = doRequest(t, router, http.MethodPost, "/api/v1/goals/"+uuid.NewString()+"/complete?user_id=u1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("complete unknown goal status = %d, want 404", rec.Code)
	}

	rec, resp = doRequest(t, router, http.MethodGet, "/api/v1/goals?user_id=u1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}
	data, _ = json.Marshal(resp.Data)
	var goals []models.Goal
	if err := json.Unmarshal(data, &goals); err != nil {
		t.Fatalf("decode goals: %v", err)
	}
	if len(goals) != 1 || !goals[0].Completed {
		t.Errorf("goals = %+v, want one completed goal", goals)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec, resp := doRequest(t, newTestRouter(&mockStore{}), http.MethodGet, "/api/v1/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if resp.Status != "success" {
		t.Errorf("envelope status = %q, want success", resp.Status)
	}

	store := &mockStore{pingErr: context.DeadlineExceeded}
	rec, _ = doRequest(t, newTestRouter(store), http.MethodGet, "/api/v1/health", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("degraded status = %d, want 503", rec.Code)
	}
}
