package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/outfit-planner/internal/db"
	"github.com/jonathan/outfit-planner/internal/inventory"
	"github.com/jonathan/outfit-planner/internal/pipeline"
	"github.com/jonathan/outfit-planner/internal/server/ratelimit"
	"github.com/jonathan/outfit-planner/internal/types"
)

// fakeStore keeps history and availability updates in memory
type fakeStore struct {
	mu           sync.Mutex
	sets         map[uuid.UUID]*types.RecommendationSet
	availability map[int]bool
	saveErr      error
	setErr       error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sets:         make(map[uuid.UUID]*types.RecommendationSet),
		availability: make(map[int]bool),
	}
}

func (f *fakeStore) SaveRecommendationSet(_ context.Context, set *types.RecommendationSet) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.sets[set.QueryID] = set
	return nil
}

func (f *fakeStore) GetRecommendationSet(_ context.Context, id uuid.UUID) (*types.RecommendationSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets[id], nil
}

func (f *fakeStore) SetAvailability(_ context.Context, id int, available bool, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id == 999 {
		return fmt.Errorf("item %d: %w", id, db.ErrItemNotFound)
	}
	if f.setErr != nil {
		return f.setErr
	}
	f.availability[id] = available
	return nil
}

func newTestServer(t *testing.T, store Store) *Server {
	t.Helper()
	engine, err := pipeline.NewEngine(pipeline.Options{})
	require.NoError(t, err)

	s, err := New(Config{
		Engine:     engine,
		Source:     inventory.NewSource(inventory.SampleWardrobe()),
		Store:      store,
		RateLimit:  &ratelimit.Config{Enabled: false},
		MaxResults: types.DefaultMaxResults,
	})
	require.NoError(t, err)
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["error"]
}

func TestNew_RequiresEngineAndSource(t *testing.T) {
	_, err := New(Config{Source: inventory.NewSource(inventory.NewWardrobe())})
	assert.Error(t, err)

	engine, err := pipeline.NewEngine(pipeline.Options{})
	require.NoError(t, err)
	_, err = New(Config{Engine: engine})
	assert.Error(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, float64(80), resp["items"])
}

func TestCORS_Preflight(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodOptions, "/recommendations", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecommendEndpoint(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store)

	w := do(t, s, http.MethodPost, "/recommendations", `{"weather":"warm","occasion":"casual","max_results":3}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var set types.RecommendationSet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &set))
	assert.Equal(t, types.WeatherWarm, set.Weather)
	assert.Len(t, set.Recommendations, 3)
	assert.Greater(t, set.Checked, 0)
	assert.Contains(t, store.sets, set.QueryID)
}

func TestRecommendEndpoint_DefaultMaxResults(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodPost, "/recommendations", `{"weather":"warm","occasion":"casual"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var set types.RecommendationSet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &set))
	assert.Len(t, set.Recommendations, types.DefaultMaxResults)
}

func TestRecommendEndpoint_BadRequests(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{name: "invalid JSON", body: `{not json`, wantError: "invalid JSON body"},
		{name: "missing weather", body: `{"occasion":"casual"}`, wantError: "weather"},
		{name: "missing occasion", body: `{"weather":"hot"}`, wantError: "occasion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, nil)
			w := do(t, s, http.MethodPost, "/recommendations", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decodeError(t, w), tt.wantError)
		})
	}
}

func TestRecommendEndpoint_HistoryFailureIsNotFatal(t *testing.T) {
	store := newFakeStore()
	store.saveErr = errors.New("database unavailable")
	s := newTestServer(t, store)

	w := do(t, s, http.MethodPost, "/recommendations", `{"weather":"cool","occasion":"business"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecommendStreamEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodPost, "/recommendations/stream", `{"weather":"warm","occasion":"casual","max_results":2}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	var events []string
	var result types.RecommendationSet
	var complete CompleteEvent
	scanner := bufio.NewScanner(strings.NewReader(w.Body.String()))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var current string
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			current = strings.TrimPrefix(line, "event: ")
			events = append(events, current)
		case strings.HasPrefix(line, "data: ") && current == EventResult:
			require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &result))
		case strings.HasPrefix(line, "data: ") && current == EventComplete:
			require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &complete))
		}
	}

	assert.Equal(t, []string{EventProgress, EventProgress, EventProgress, EventResult, EventComplete}, events)
	assert.Len(t, result.Recommendations, 2)
	assert.Equal(t, result.QueryID.String(), complete.QueryID)
	assert.Equal(t, "completed", complete.Status)
	assert.Equal(t, result.Checked, complete.Checked)
	assert.Equal(t, result.Valid, complete.Valid)
	assert.Equal(t, 2, complete.Returned)
}

func TestRecommendStreamEndpoint_BadRequest(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodPost, "/recommendations/stream", `{"weather":"warm"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRecommendations(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store)

	w := do(t, s, http.MethodPost, "/recommendations", `{"weather":"warm","occasion":"casual"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var set types.RecommendationSet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &set))

	w = do(t, s, http.MethodGet, "/recommendations/"+set.QueryID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	var got types.RecommendationSet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, set.QueryID, got.QueryID)

	w = do(t, s, http.MethodGet, "/recommendations/"+uuid.New().String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, s, http.MethodGet, "/recommendations/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRecommendations_NoStore(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodGet, "/recommendations/"+uuid.New().String(), "")
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestCheckEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodPost, "/recommendations", `{"weather":"warm","occasion":"casual","max_results":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	var set types.RecommendationSet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &set))
	require.Len(t, set.Recommendations, 1)

	ids := make([]int, 0, len(set.Recommendations[0].Items))
	for _, item := range set.Recommendations[0].Items {
		ids = append(ids, item.ID)
	}
	body, err := json.Marshal(CheckRequest{ItemIDs: ids, Weather: types.WeatherWarm, Occasion: types.OccasionCasual})
	require.NoError(t, err)

	w = do(t, s, http.MethodPost, "/check", string(body))
	require.Equal(t, http.StatusOK, w.Code)

	var result pipeline.CheckResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Validation.Passed)
	require.NotNil(t, result.Score)
	assert.InDelta(t, set.Recommendations[0].Score, result.Score.Total, 1e-9)
}

func TestCheckEndpoint_Failing(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodPost, "/check", `{"item_ids":[1,2],"weather":"warm","occasion":"casual"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result pipeline.CheckResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Validation.Passed)
	assert.Equal(t, "availability", result.Validation.Check)
	assert.Nil(t, result.Score)
}

func TestCheckEndpoint_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "invalid JSON", body: `[`, wantStatus: http.StatusBadRequest},
		{name: "no items", body: `{"item_ids":[],"weather":"warm","occasion":"casual"}`, wantStatus: http.StatusBadRequest},
		{name: "unknown item", body: `{"item_ids":[1,9999],"weather":"warm","occasion":"casual"}`, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, nil)
			w := do(t, s, http.MethodPost, "/check", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestWardrobeStatsEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodGet, "/wardrobe/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats types.WardrobeStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 80, stats.TotalItems)
	assert.Equal(t, 72, stats.AvailableItems)
	assert.Equal(t, 18, stats.ByCategory[types.CategoryBaseLayer])
}

func TestUnavailableEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodGet, "/wardrobe/unavailable", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int          `json:"count"`
		Items []types.Item `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 8, resp.Count)
	assert.Len(t, resp.Items, 8)
}

func TestSetAvailabilityEndpoint(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store)

	w := do(t, s, http.MethodPut, "/wardrobe/items/1/availability", `{"available":false,"reason":"stained"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var item types.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.False(t, item.Available)
	assert.Equal(t, "stained", item.UnavailableReason)
	assert.Equal(t, false, store.availability[1])

	for _, rec := range s.source.Snapshot().AvailableItems(types.CategoryBaseLayer) {
		assert.NotEqual(t, 1, rec.ID)
	}

	w = do(t, s, http.MethodPut, "/wardrobe/items/2/availability", `{"available":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.True(t, item.Available)
	assert.Empty(t, item.UnavailableReason)
}

func TestSetAvailabilityEndpoint_StoreFailureKeepsWardrobe(t *testing.T) {
	store := newFakeStore()
	store.setErr = errors.New("connection reset")
	s := newTestServer(t, store)

	before, ok := s.source.Wardrobe().Get(1)
	require.True(t, ok)
	require.True(t, before.Available)

	w := do(t, s, http.MethodPut, "/wardrobe/items/1/availability", `{"available":false}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	after, _ := s.source.Wardrobe().Get(1)
	assert.Equal(t, before, after)
	assert.NotContains(t, store.availability, 1)

	// An unavailable item stays unavailable with its reason
	w = do(t, s, http.MethodPut, "/wardrobe/items/2/availability", `{"available":true}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	item, _ := s.source.Wardrobe().Get(2)
	assert.False(t, item.Available)
	assert.NotEmpty(t, item.UnavailableReason)
}

func TestSetAvailabilityEndpoint_WritesWardrobeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wardrobe.json")
	require.NoError(t, inventory.WriteWardrobe(path, inventory.SampleWardrobe()))
	wardrobe, err := inventory.LoadWardrobe(path)
	require.NoError(t, err)

	engine, err := pipeline.NewEngine(pipeline.Options{})
	require.NoError(t, err)
	s, err := New(Config{
		Engine:       engine,
		Source:       inventory.NewSource(wardrobe),
		WardrobePath: path,
		RateLimit:    &ratelimit.Config{Enabled: false},
	})
	require.NoError(t, err)
	t.Cleanup(s.rateLimiter.Stop)

	w := do(t, s, http.MethodPut, "/wardrobe/items/1/availability", `{"available":false,"reason":"at the tailor"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	onDisk, err := inventory.LoadWardrobe(path)
	require.NoError(t, err)
	item, ok := onDisk.Get(1)
	require.True(t, ok)
	assert.False(t, item.Available)
	assert.Equal(t, "at the tailor", item.UnavailableReason)
	assert.Equal(t, wardrobe.Len(), onDisk.Len())
}

func TestSetAvailabilityEndpoint_FileWriteFailureKeepsWardrobe(t *testing.T) {
	engine, err := pipeline.NewEngine(pipeline.Options{})
	require.NoError(t, err)
	s, err := New(Config{
		Engine:       engine,
		Source:       inventory.NewSource(inventory.SampleWardrobe()),
		WardrobePath: filepath.Join(t.TempDir(), "missing", "wardrobe.json"),
		RateLimit:    &ratelimit.Config{Enabled: false},
	})
	require.NoError(t, err)
	t.Cleanup(s.rateLimiter.Stop)

	w := do(t, s, http.MethodPut, "/wardrobe/items/1/availability", `{"available":false}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	item, _ := s.source.Wardrobe().Get(1)
	assert.True(t, item.Available)
}

func TestSetAvailabilityEndpoint_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{name: "non-numeric id", path: "/wardrobe/items/abc/availability", body: `{"available":true}`, wantStatus: http.StatusBadRequest},
		{name: "invalid JSON", path: "/wardrobe/items/1/availability", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "unknown item", path: "/wardrobe/items/9999/availability", body: `{"available":true}`, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, newFakeStore())
			w := do(t, s, http.MethodPut, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	engine, err := pipeline.NewEngine(pipeline.Options{})
	require.NoError(t, err)
	s, err := New(Config{
		Engine: engine,
		Source: inventory.NewSource(inventory.SampleWardrobe()),
		RateLimit: &ratelimit.Config{
			Enabled:       true,
			DefaultLimit:  2,
			DefaultWindow: time.Minute,
			Whitelist:     map[string]bool{},
			Blacklist:     map[string]bool{},
		},
	})
	require.NoError(t, err)
	t.Cleanup(s.rateLimiter.Stop)

	for i := 0; i < 2; i++ {
		w := do(t, s, http.MethodGet, "/wardrobe/stats", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := do(t, s, http.MethodGet, "/wardrobe/stats", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "rate_limit_exceeded", resp["error"])

	// Health is never limited
	w = do(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "validation", err: &ErrValidation{Field: "weather", Message: "is required"}, expected: http.StatusBadRequest},
		{name: "query", err: &pipeline.QueryError{Message: "invalid query"}, expected: http.StatusBadRequest},
		{name: "unknown items", err: &ErrUnknownItems{IDs: []int{9}}, expected: http.StatusNotFound},
		{name: "item not found", err: &inventory.ItemError{ID: 9, Message: "not found", NotFound: true}, expected: http.StatusNotFound},
		{name: "item rejected", err: &inventory.ItemError{ID: 9, Message: "duplicate"}, expected: http.StatusBadRequest},
		{name: "stored item not found", err: fmt.Errorf("item 9: %w", db.ErrItemNotFound), expected: http.StatusNotFound},
		{name: "wrapped validation", err: fmt.Errorf("outer: %w", &ErrValidation{Field: "x"}), expected: http.StatusBadRequest},
		{name: "unknown", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "validation error: weather - is required", (&ErrValidation{Field: "weather", Message: "is required"}).Error())
	assert.Equal(t, "unknown item ids: [7 9]", (&ErrUnknownItems{IDs: []int{7, 9}}).Error())
}
