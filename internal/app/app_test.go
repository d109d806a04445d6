package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findmyprof/findmyprof-go/internal/config"
	"github.com/findmyprof/findmyprof-go/internal/storage"
)

const testSeedJSON = `{
  "professors": [
    {"id": 1, "name": "Juan Santos", "department": "Computer Science", "email": "jsantos@univ.edu", "office_location": "CS Bldg 204", "image_url": "https://img.findmyprof.example/santos.png"},
    {"id": 2, "name": "Maria Cruz", "department": "Mathematics"},
    {"id": 3, "name": "Ana Reyes", "department": "Physics"}
  ],
  "subjects": [
    {"id": 10, "professor_id": 1, "subject_code": "CS205", "subject_name": "Database Systems", "units": 3},
    {"id": 11, "professor_id": 1, "subject_code": "CS101", "subject_name": "Intro to Programming", "units": 3},
    {"id": 20, "professor_id": 2, "subject_code": "MATH101", "subject_name": "Calculus I", "units": 4}
  ],
  "schedules": [
    {"id": 100, "professor_id": 1, "subject_id": 11, "classroom": "Room 301", "day": "Monday", "time_start": "08:00", "time_end": "09:30"}
  ],
  "attachments": [
    {"id": 1000, "professor_id": 1, "schedule_id": 100, "file_name": "syllabus.pdf", "file_path": "professors/1/syllabus.pdf", "created_at": 100},
    {"id": 1001, "professor_id": 1, "file_name": "office-hours.png", "file_path": "professors/1/office-hours.png", "created_at": 200}
  ]
}`

// setupTestApp initializes the full application against an in-memory
// database seeded with three professors. vars override the defaults.
func setupTestApp(t *testing.T, vars map[string]string) *Application {
	t.Helper()

	seedPath := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(seedPath, []byte(testSeedJSON), 0o600))

	env := map[string]string{
		config.EnvDatabasePath:       storage.MemoryPath,
		config.EnvCatalogSeedFile:    seedPath,
		config.EnvLogLevel:           "error",
		config.EnvChatRateBurst:      "100",
		config.EnvChatIPRateBurst:    "1000",
		config.EnvCatalogReloadBurst: "100",
	}
	for k, v := range vars {
		env[k] = v
	}
	cfg, err := config.LoadFromMap(env)
	require.NoError(t, err)

	a, err := Initialize(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { a.closeResources(context.Background()) })
	return a
}

func doRequest(a *Application, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func TestHome(t *testing.T) {
	a := setupTestApp(t, nil)

	w := doRequest(a, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "running", resp["status"])
	assert.Equal(t, "FindMyProf Chatbot API", resp["message"])
	assert.NotEmpty(t, resp["version"])
}

func TestChat_FindProfessor(t *testing.T) {
	a := setupTestApp(t, nil)

	w := doRequest(a, http.MethodPost, "/chat", map[string]string{
		"message":    "Find Prof. Santos",
		"session_id": "sess-1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "professor_search", resp["intent"])
	assert.Contains(t, resp["response"], "Computer Science")

	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "data should be the professor object")
	assert.Equal(t, "Juan Santos", data["name"])

	emotion, ok := resp["emotion"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, emotion, "emotion")
	assert.Contains(t, emotion, "emoji")

	assert.Len(t, resp["suggestions"], 3)
	assert.Equal(t, "https://img.findmyprof.example/santos.png", resp["image_url"])
}

func TestChat_ImageURLNullWithoutPhoto(t *testing.T) {
	a := setupTestApp(t, nil)

	for _, message := range []string{"hello", "Find Prof. Cruz"} {
		w := doRequest(a, http.MethodPost, "/chat", map[string]string{"message": message})
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode(t, w)
		require.Contains(t, resp, "image_url", message)
		assert.Nil(t, resp["image_url"], message)
	}
}

func TestChat_Greeting(t *testing.T) {
	a := setupTestApp(t, nil)

	w := doRequest(a, http.MethodPost, "/chat", map[string]string{"message": "hello"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "greeting", resp["intent"])
	assert.Nil(t, resp["data"])
	assert.NotEmpty(t, resp["response"])
}

func TestChat_AttachmentsFromDatabase(t *testing.T) {
	a := setupTestApp(t, nil)

	w := doRequest(a, http.MethodPost, "/chat", map[string]string{"message": "Juan Santos attachment"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "attachment", resp["intent"])
	files, ok := resp["attachments"].([]any)
	require.True(t, ok)
	require.Len(t, files, 2)

	newest := files[0].(map[string]any)
	assert.Equal(t, "office-hours.png", newest["file_name"])
	oldest := files[1].(map[string]any)
	assert.Equal(t, "CS101", oldest["subject_code"])
}

func TestChat_Validation(t *testing.T) {
	a := setupTestApp(t, map[string]string{config.EnvChatMaxMessageLength: "20"})

	tests := []struct {
		name    string
		body    any
		wantErr string
	}{
		{"invalid json", "{not json", "Message is required"},
		{"missing message", map[string]string{"session_id": "s"}, "Message is required"},
		{"empty message", map[string]string{"message": ""}, "Message is required"},
		{"blank message", map[string]string{"message": "   "}, "Message is required"},
		{"too long", map[string]string{"message": strings.Repeat("a", 21)}, "Message must be at most 20 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(a, http.MethodPost, "/chat", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			resp := decode(t, w)
			assert.Equal(t, false, resp["success"])
			assert.Equal(t, tt.wantErr, resp["error"])
		})
	}

	assert.Equal(t, float64(len(tests)),
		testutil.ToFloat64(a.metrics.HTTPErrorsTotal.WithLabelValues("validation", "/chat")))
}

func TestChat_RateLimitedPerSession(t *testing.T) {
	a := setupTestApp(t, map[string]string{
		config.EnvChatRateBurst:  "2",
		config.EnvChatRateRefill: "0",
	})

	msg := map[string]string{"message": "hello", "session_id": "busy"}
	for range 2 {
		require.Equal(t, http.StatusOK, doRequest(a, http.MethodPost, "/chat", msg).Code)
	}

	w := doRequest(a, http.MethodPost, "/chat", msg)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Equal(t, false, decode(t, w)["success"])

	other := map[string]string{"message": "hello", "session_id": "quiet"}
	assert.Equal(t, http.StatusOK, doRequest(a, http.MethodPost, "/chat", other).Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.metrics.HTTPErrorsTotal.WithLabelValues("rate_limit", "/chat")))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.metrics.RateLimiterDropped.WithLabelValues("chat")))
}

func TestChat_NoSessionFallsBackToClientIP(t *testing.T) {
	a := setupTestApp(t, map[string]string{
		config.EnvChatRateBurst:  "1",
		config.EnvChatRateRefill: "0",
	})

	msg := map[string]string{"message": "hello"}
	require.Equal(t, http.StatusOK, doRequest(a, http.MethodPost, "/chat", msg).Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(a, http.MethodPost, "/chat", msg).Code)
}

func TestChat_RotatingSessionsLimitedPerIP(t *testing.T) {
	a := setupTestApp(t, map[string]string{
		config.EnvChatIPRateBurst:  "3",
		config.EnvChatIPRateRefill: "0",
	})

	for i := range 3 {
		msg := map[string]string{"message": "hello", "session_id": fmt.Sprintf("fresh-%d", i)}
		require.Equal(t, http.StatusOK, doRequest(a, http.MethodPost, "/chat", msg).Code)
	}

	w := doRequest(a, http.MethodPost, "/chat", map[string]string{"message": "hello", "session_id": "fresh-3"})
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.metrics.RateLimiterDropped.WithLabelValues("chat_ip")))
	assert.Zero(t, testutil.ToFloat64(a.metrics.RateLimiterDropped.WithLabelValues("chat")))
}

func TestChat_IPDailyQuota(t *testing.T) {
	a := setupTestApp(t, map[string]string{
		config.EnvChatIPRateDaily: "2",
	})

	for i := range 2 {
		msg := map[string]string{"message": "hello", "session_id": fmt.Sprintf("day-%d", i)}
		require.Equal(t, http.StatusOK, doRequest(a, http.MethodPost, "/chat", msg).Code)
	}
	w := doRequest(a, http.MethodPost, "/chat", map[string]string{"message": "hello", "session_id": "day-2"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestReloadData(t *testing.T) {
	a := setupTestApp(t, nil)
	require.Equal(t, 3, a.engine.CatalogSize())

	_, err := a.db.ImportSeed(context.Background(), &storage.Seed{
		Professors: []storage.Professor{{ID: 4, Name: "Pedro Lim", Department: "Chemistry"}},
	})
	require.NoError(t, err)

	w := doRequest(a, http.MethodPost, "/reload-data", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Data reloaded successfully", resp["message"])
	assert.Equal(t, 4.0, resp["professors_loaded"])

	health := decode(t, doRequest(a, http.MethodGet, "/health", nil))
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, 4.0, health["professors_loaded"])

	assert.Equal(t, 1.0, testutil.ToFloat64(a.metrics.CatalogReloadsTotal.WithLabelValues("api", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.metrics.CatalogReloadsTotal.WithLabelValues("startup", "success")))
}

func TestReloadData_FeedFailureServesEmptyCatalog(t *testing.T) {
	a := setupTestApp(t, nil)
	require.NoError(t, a.db.Close())

	w := doRequest(a, http.MethodPost, "/reload-data", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, 0.0, resp["professors_loaded"])
	assert.Equal(t, 0.0, decode(t, doRequest(a, http.MethodGet, "/health", nil))["professors_loaded"])
	assert.Equal(t, 1.0, testutil.ToFloat64(a.metrics.CatalogFeedErrorsTotal))

	chat := decode(t, doRequest(a, http.MethodPost, "/chat", map[string]string{"message": "Find Prof. Santos"}))
	assert.Equal(t, "professor_search", chat["intent"])
	assert.Contains(t, chat["response"], "couldn't find that professor")
}

func TestReloadData_RateLimited(t *testing.T) {
	a := setupTestApp(t, map[string]string{
		config.EnvCatalogReloadBurst:  "1",
		config.EnvCatalogReloadRefill: "0",
	})

	require.Equal(t, http.StatusOK, doRequest(a, http.MethodPost, "/reload-data", nil).Code)

	w := doRequest(a, http.MethodPost, "/reload-data", nil)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "rate limit exceeded", decode(t, w)["error"])
}

func TestSearchProfessors(t *testing.T) {
	a := setupTestApp(t, nil)

	tests := []struct {
		name      string
		query     string
		wantCode  int
		wantNames []string
	}{
		{"by name", "?q=santos", http.StatusOK, []string{"Juan Santos"}},
		{"by subject code", "?q=math101", http.StatusOK, []string{"Maria Cruz"}},
		{"limit", "?q=a&limit=2", http.StatusOK, []string{"Ana Reyes", "Juan Santos"}},
		{"empty query", "", http.StatusOK, []string{}},
		{"bad limit", "?q=a&limit=abc", http.StatusBadRequest, nil},
		{"limit too large", "?q=a&limit=500", http.StatusBadRequest, nil},
		{"query too long", "?q=" + strings.Repeat("x", 101), http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(a, http.MethodGet, "/professors/search"+tt.query, nil)
			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.wantNames == nil {
				return
			}

			var resp struct {
				Count      int                 `json:"count"`
				Professors []storage.Professor `json:"professors"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			names := make([]string, 0, len(resp.Professors))
			for _, p := range resp.Professors {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.wantNames, names)
			assert.Equal(t, len(tt.wantNames), resp.Count)
		})
	}
}

func TestLivenessCheck(t *testing.T) {
	a := setupTestApp(t, nil)

	w := doRequest(a, http.MethodGet, "/livez", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alive", decode(t, w)["status"])

	// Liveness does not depend on the database.
	require.NoError(t, a.db.Close())
	assert.Equal(t, http.StatusOK, doRequest(a, http.MethodHead, "/livez", nil).Code)
}

func TestReadinessCheck(t *testing.T) {
	a := setupTestApp(t, nil)

	w := doRequest(a, http.MethodGet, "/readyz", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "ready", resp["status"])
	assert.Equal(t, "connected", resp["database"])
	catalog, ok := resp["catalog"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 3.0, catalog["professors"])
	assert.NotEmpty(t, catalog["built_at"])
}

func TestReadinessCheck_CatalogNotLoaded(t *testing.T) {
	a := setupTestApp(t, nil)
	a.catalogReady.Store(false)

	w := doRequest(a, http.MethodGet, "/readyz", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "catalog not loaded", decode(t, w)["reason"])
}

func TestReadinessCheck_DatabaseFailure(t *testing.T) {
	a := setupTestApp(t, nil)
	require.NoError(t, a.db.Close())

	w := doRequest(a, http.MethodGet, "/readyz", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "not ready", resp["status"])
	assert.Equal(t, "database unavailable", resp["reason"])
}

func TestMetricsEndpoint(t *testing.T) {
	a := setupTestApp(t, nil)
	doRequest(a, http.MethodPost, "/chat", map[string]string{"message": "hello"})

	w := doRequest(a, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "findmyprof_catalog_persons 3")
	assert.Contains(t, body, `findmyprof_messages_total{intent="greeting"} 1`)
	assert.Contains(t, body, "go_goroutines")
	assert.Contains(t, body, "findmyprof_log_queue_pending 0")
}

func TestMetricsEndpoint_RequiresAuthWhenConfigured(t *testing.T) {
	a := setupTestApp(t, map[string]string{config.EnvMetricsPassword: "scrape"})

	assert.Equal(t, http.StatusUnauthorized, doRequest(a, http.MethodGet, "/metrics", nil).Code)
	assert.Equal(t, http.StatusOK,
		doRequest(a, http.MethodGet, "/metrics", nil, "Authorization", basicAuth("prometheus", "scrape")).Code)
}

func TestInitialize_MissingSeedFile(t *testing.T) {
	cfg, err := config.LoadFromMap(map[string]string{
		config.EnvDatabasePath:    storage.MemoryPath,
		config.EnvCatalogSeedFile: filepath.Join(t.TempDir(), "missing.json"),
		config.EnvLogLevel:        "error",
	})
	require.NoError(t, err)

	_, err = Initialize(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed")
}

func TestInitialize_NoSeedServesEmptyCatalog(t *testing.T) {
	cfg, err := config.LoadFromMap(map[string]string{
		config.EnvDatabasePath: storage.MemoryPath,
		config.EnvLogLevel:     "error",
	})
	require.NoError(t, err)

	a, err := Initialize(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { a.closeResources(context.Background()) })

	assert.Zero(t, a.engine.CatalogSize())
	assert.True(t, a.catalogReady.Load(), "an empty but successful load is ready")

	resp := decode(t, doRequest(a, http.MethodPost, "/chat", map[string]string{"message": "Find Prof. Santos"}))
	assert.Contains(t, resp["response"], "couldn't find that professor")
}
