package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"aiatlas/pkg/auth"
	"aiatlas/pkg/models"
	"aiatlas/pkg/news"
	"aiatlas/pkg/store"
)

const testPassword = "aiatlas-test-pw"

func newTestHandler(t *testing.T, collector *news.Collector) http.Handler {
	t.Helper()
	return newTestHandlerWithToken(t, collector, "")
}

func newTestHandlerWithToken(t *testing.T, collector *news.Collector, collectToken string) http.Handler {
	t.Helper()
	require.NoError(t, store.Open(t.TempDir()))
	t.Cleanup(func() { _ = store.Close() })

	return NewServer(Options{
		AdminID:       "admin",
		AdminPassword: testPassword,
		CollectToken:  collectToken,
		Collector:     collector,
	}).Handler()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any, token string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return w, out
}

func adminToken() string { return auth.Token(testPassword) }

func TestHealthBothPrefixes(t *testing.T) {
	h := newTestHandler(t, nil)
	for _, path := range []string{
		"/v1/gendao/aiatlas/health",
		"/api/aiatlas/health",
		"/health",
	} {
		w, out := doJSON(t, h, http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, w.Code, path)
		require.Equal(t, "healthy", out["status"])
		require.Equal(t, "AI Civilization Atlas", out["service"])
		require.Equal(t, "1.0.0", out["version"])
		require.NotEmpty(t, out["timestamp"])
	}
}

func TestOptionsShortCircuit(t *testing.T) {
	h := newTestHandler(t, nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/aiatlas/events", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"OK"}`, w.Body.String())
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "Content-Type,Authorization", w.Header().Get("Access-Control-Allow-Headers"))
	require.Equal(t, "GET,POST,PUT,DELETE,OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
}

func TestNotFoundEchoesNormalizedPath(t *testing.T) {
	h := newTestHandler(t, nil)
	w, out := doJSON(t, h, http.MethodGet, "/v1/gendao/aiatlas/nope", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Not found", out["error"])
	require.Equal(t, "/nope", out["path"])

	// wrong method on a known path is the same 404 envelope
	w, out = doJSON(t, h, http.MethodDelete, "/api/aiatlas/roadmaps", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "/roadmaps", out["path"])
}

func TestLogin(t *testing.T) {
	h := newTestHandler(t, nil)

	w, out := doJSON(t, h, http.MethodPost, "/api/aiatlas/auth/login", map[string]string{"password": testPassword}, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, out["success"])
	require.Equal(t, adminToken(), out["token"])

	w, out = doJSON(t, h, http.MethodPost, "/api/aiatlas/auth/login", map[string]string{"password": "wrong"}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Invalid password", out["error"])

	// missing body is treated as an empty password
	w, _ = doJSON(t, h, http.MethodPost, "/api/aiatlas/auth/login", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminEndpointsRequireBearer(t *testing.T) {
	h := newTestHandler(t, nil)
	cases := []struct{ method, path string }{
		{http.MethodGet, "/api/aiatlas/config"},
		{http.MethodPut, "/api/aiatlas/config"},
		{http.MethodGet, "/api/aiatlas/events"},
		{http.MethodPost, "/api/aiatlas/events"},
		{http.MethodDelete, "/api/aiatlas/events/event_x"},
		{http.MethodGet, "/api/aiatlas/status"},
		{http.MethodPost, "/api/aiatlas/news/collect"},
	}
	for _, c := range cases {
		w, out := doJSON(t, h, c.method, c.path, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", c.method, c.path)
		require.Equal(t, "Unauthorized", out["error"])

		w, _ = doJSON(t, h, c.method, c.path, nil, "bogus-token")
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", c.method, c.path)
	}
}

func TestConfigDefaultsAndRoundTrip(t *testing.T) {
	h := newTestHandler(t, nil)

	w, out := doJSON(t, h, http.MethodGet, "/api/aiatlas/config", nil, adminToken())
	require.Equal(t, http.StatusOK, w.Code)
	cfg := out["config"].(map[string]any)
	require.Equal(t, "AI Civilization Atlas", cfg["title"])
	require.Equal(t, "AI 문명 관측소", cfg["subtitle"])
	require.Equal(t, "off", cfg["auto_update"])
	require.Equal(t, "analytical", cfg["content_tone"])

	w, out = doJSON(t, h, http.MethodPut, "/api/aiatlas/config",
		map[string]string{"title": "새 제목", "auto_update": "on"}, adminToken())
	require.Equal(t, http.StatusOK, w.Code)
	cfg = out["config"].(map[string]any)
	require.Equal(t, "새 제목", cfg["title"])
	require.Equal(t, "on", cfg["auto_update"])
	// absent fields fell back to defaults
	require.Equal(t, "AI 문명 관측소", cfg["subtitle"])
	require.NotEmpty(t, cfg["updated_at"])

	_, out = doJSON(t, h, http.MethodGet, "/api/aiatlas/config", nil, adminToken())
	cfg = out["config"].(map[string]any)
	require.Equal(t, "새 제목", cfg["title"])
	require.Equal(t, "on", cfg["auto_update"])
}

func TestEventLifecycle(t *testing.T) {
	h := newTestHandler(t, nil)

	w, out := doJSON(t, h, http.MethodPost, "/api/aiatlas/events", map[string]string{
		"title":        "합성 데이터 전환",
		"date":         "2026-05",
		"what_changed": "학습 데이터의 주류가 합성 데이터로 이동",
	}, adminToken())
	require.Equal(t, http.StatusOK, w.Code)
	ev := out["event"].(map[string]any)
	id := ev["id"].(string)
	require.Regexp(t, `^event_[0-9a-f-]{36}$`, id)
	require.Equal(t, "Civilization", ev["category"])
	require.Equal(t, "published", ev["status"])

	// visible on the public timeline, via both aliases
	for _, path := range []string{"/api/aiatlas/events/public", "/api/aiatlas/timeline"} {
		w, out = doJSON(t, h, http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		events := out["events"].([]any)
		require.Len(t, events, 1)
		require.Equal(t, id, events[0].(map[string]any)["id"])
	}

	w, out = doJSON(t, h, http.MethodDelete, "/api/aiatlas/events/"+id, nil, adminToken())
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, out["success"])

	_, out = doJSON(t, h, http.MethodGet, "/api/aiatlas/events/public", nil, "")
	require.Empty(t, out["events"])
}

func TestDraftEventsHiddenFromPublic(t *testing.T) {
	h := newTestHandler(t, nil)

	require.NoError(t, store.PutEvent(models.TimelineEvent{
		ID: "event_draft", Title: "미공개", Date: "2026-01", Status: models.StatusDraft,
	}))
	require.NoError(t, store.PutEvent(models.TimelineEvent{
		ID: "event_pub", Title: "공개", Date: "2025-01", Status: models.StatusPublished,
	}))

	_, out := doJSON(t, h, http.MethodGet, "/api/aiatlas/events/public", nil, "")
	events := out["events"].([]any)
	require.Len(t, events, 1)
	require.Equal(t, "event_pub", events[0].(map[string]any)["id"])

	// the admin listing includes drafts
	_, out = doJSON(t, h, http.MethodGet, "/api/aiatlas/events", nil, adminToken())
	require.Len(t, out["events"].([]any), 2)
}

func TestCatalogEndpoints(t *testing.T) {
	h := newTestHandler(t, nil)

	_, out := doJSON(t, h, http.MethodGet, "/api/aiatlas/roadmaps", nil, "")
	require.Len(t, out["roadmaps"].([]any), 5)

	_, out = doJSON(t, h, http.MethodGet, "/api/aiatlas/irreversibles", nil, "")
	require.Len(t, out["irreversibles"].([]any), 5)

	_, out = doJSON(t, h, http.MethodGet, "/api/aiatlas/outlook", nil, "")
	require.Len(t, out["scenarios"].(map[string]any), 4)
	require.Len(t, out["epochs"].([]any), 5)

	_, out = doJSON(t, h, http.MethodGet, "/api/aiatlas/governance", nil, "")
	gov := out["governance_shift"].(map[string]any)
	require.Len(t, gov, 4)
	require.Contains(t, gov, "near_future")

	// pure reads are stable across calls
	w1, _ := doJSON(t, h, http.MethodGet, "/api/aiatlas/roadmaps", nil, "")
	w2, _ := doJSON(t, h, http.MethodGet, "/api/aiatlas/roadmaps", nil, "")
	require.Equal(t, w1.Body.String(), w2.Body.String())
}

func TestStatusCounts(t *testing.T) {
	h := newTestHandler(t, nil)

	require.NoError(t, store.PutEvent(models.TimelineEvent{ID: "event_1", Status: models.StatusPublished}))
	require.NoError(t, store.PutNewsItem(models.NewsItem{ID: "news_1", Status: models.StatusPublished}))
	require.NoError(t, store.PutNewsItem(models.NewsItem{ID: "news_2", Status: models.StatusDraft}))

	_, out := doJSON(t, h, http.MethodGet, "/api/aiatlas/status", nil, adminToken())
	status := out["status"].(map[string]any)
	require.EqualValues(t, 1, status["events_count"])
	require.EqualValues(t, 2, status["news_count"])
	require.EqualValues(t, 5, status["roadmaps_count"])
	require.EqualValues(t, 5, status["irreversibles_count"])
	require.NotEmpty(t, status["last_updated"])
}

func TestNewsLatestCapAndFilter(t *testing.T) {
	h := newTestHandler(t, nil)

	for i := 0; i < 10; i++ {
		require.NoError(t, store.PutNewsItem(models.NewsItem{
			ID:          "news_" + string(rune('a'+i)),
			PublishedAt: "2026-08-2" + string(rune('0'+i%10)) + "T00:00:00Z",
			Status:      models.StatusPublished,
		}))
	}
	require.NoError(t, store.PutNewsItem(models.NewsItem{ID: "news_draft", Status: models.StatusDraft}))

	_, out := doJSON(t, h, http.MethodGet, "/api/aiatlas/news/latest", nil, "")
	require.Len(t, out["news"].([]any), newsLatestLimit)

	// the unfiltered listing returns everything
	_, out = doJSON(t, h, http.MethodGet, "/api/aiatlas/news", nil, "")
	require.Len(t, out["news"].([]any), 11)
}

func TestNewsLatestEmpty(t *testing.T) {
	h := newTestHandler(t, nil)
	w, out := doJSON(t, h, http.MethodGet, "/api/aiatlas/news/latest", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, out["news"])
	require.Empty(t, out["news"])
}

func TestNewsScriptEmptyStore(t *testing.T) {
	h := newTestHandler(t, nil)
	w, out := doJSON(t, h, http.MethodGet, "/api/aiatlas/news/script", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	sc := out["script"].(map[string]any)
	require.Equal(t, "1분", sc["estimated_length"])
	require.NotEmpty(t, sc["intro"])
	require.NotEmpty(t, sc["outro"])
	require.Empty(t, sc["sections"])
}

type fixedFetcher struct{ items []news.Item }

func (f *fixedFetcher) Fetch(_ context.Context, _ news.Feed) ([]news.Item, error) {
	return f.items, nil
}

func TestCollectNews(t *testing.T) {
	collector := news.NewCollector(&fixedFetcher{items: []news.Item{
		{Title: "수집 항목", Link: "https://example.com/1", Description: "설명"},
	}}, nil)
	h := newTestHandlerWithToken(t, collector, "cron-secret")

	// admin bearer path
	w, out := doJSON(t, h, http.MethodPost, "/api/aiatlas/news/collect", nil, adminToken())
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, len(news.Feeds()), out["collected"])
	require.Len(t, out["news"].([]any), len(news.Feeds()))

	// collect token path, no bearer
	req := httptest.NewRequest(http.MethodPost, "/api/aiatlas/news/collect", nil)
	req.Header.Set("X-Collect-Token", "cron-secret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCollectNewsRejectsBadToken(t *testing.T) {
	collector := news.NewCollector(&fixedFetcher{}, nil)
	h := newTestHandlerWithToken(t, collector, "cron-secret")

	for _, token := range []string{"", "scheduler", "cron-secret2"} {
		req := httptest.NewRequest(http.MethodPost, "/api/aiatlas/news/collect", nil)
		if token != "" {
			req.Header.Set("X-Collect-Token", token)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "token %q", token)
	}
}

func TestCollectNewsHeaderInertWithoutConfiguredToken(t *testing.T) {
	collector := news.NewCollector(&fixedFetcher{}, nil)
	h := newTestHandler(t, collector)

	for _, token := range []string{"", "cron-secret"} {
		req := httptest.NewRequest(http.MethodPost, "/api/aiatlas/news/collect", nil)
		if token != "" {
			req.Header.Set("X-Collect-Token", token)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "token %q", token)
	}
}

func TestCollectNewsWithoutCollector(t *testing.T) {
	h := newTestHandler(t, nil)
	w, out := doJSON(t, h, http.MethodPost, "/api/aiatlas/news/collect", nil, adminToken())
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "collector not configured", out["error"])
}

func TestNormalizePath(t *testing.T) {
	cases := []struct{ in, want string }{
		{"/v1/gendao/aiatlas/health", "/health"},
		{"/api/aiatlas/news/latest", "/news/latest"},
		{"/api/aiatlas/", "/"},
		{"/v1/gendao/aiatlas", "/"},
		{"/api/aiatlas/events/", "/events"},
		{"/health", "/health"},
		{"/unprefixed/path/", "/unprefixed/path"},
		// prefixes only match on a path boundary
		{"/api/aiatlasfoo", "/api/aiatlasfoo"},
		{"/v1/gendao/aiatlasx/health", "/v1/gendao/aiatlasx/health"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, NormalizePath(c.in), c.in)
	}
}

func TestCoerceNumbers(t *testing.T) {
	doc, err := decodeDocument([]byte(`{"whole":3.0,"frac":2.5,"n":7,"nested":{"v":1.0},"list":[4.0,4.5]}`))
	require.NoError(t, err)
	require.Equal(t, int64(3), doc["whole"])
	require.Equal(t, 2.5, doc["frac"])
	require.Equal(t, int64(7), doc["n"])
	require.Equal(t, int64(1), doc["nested"].(map[string]any)["v"])
	require.Equal(t, []any{int64(4), 4.5}, doc["list"])
}
