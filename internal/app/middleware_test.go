package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findmyprof/findmyprof-go/internal/ctxutil"
)

func TestSecurityHeadersMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(securityHeadersMiddleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "default-src 'none'", w.Header().Get("Content-Security-Policy"))
}

func TestRequestContextMiddleware(t *testing.T) {
	var gotID, gotIP string
	router := gin.New()
	router.Use(requestContextMiddleware())
	router.GET("/", func(c *gin.Context) {
		gotID, _ = ctxutil.GetRequestID(c.Request.Context())
		gotIP = ctxutil.GetClientIP(c.Request.Context())
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name     string
		header   string
		value    string
		wantEcho string // empty means a generated UUID
	}{
		{"request id header", "X-Request-Id", "req-123", "req-123"},
		{"correlation id header", "X-Correlation-Id", "corr-456", "corr-456"},
		{"missing header", "", "", ""},
		{"oversized header", "X-Request-Id", strings.Repeat("x", 200), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "203.0.113.7:5000"
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			echoed := w.Header().Get("X-Request-Id")
			assert.Equal(t, echoed, gotID)
			assert.Equal(t, "203.0.113.7", gotIP)
			if tt.wantEcho != "" {
				assert.Equal(t, tt.wantEcho, echoed)
				return
			}
			_, err := uuid.Parse(echoed)
			require.NoError(t, err, "generated id should be a UUID")
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		origins   []string
		origin    string
		method    string
		wantCode  int
		wantAllow string
		wantVary  bool
	}{
		{"wildcard", []string{"*"}, "https://app.example", http.MethodGet, http.StatusOK, "*", false},
		{"listed origin", []string{"https://app.example"}, "https://app.example", http.MethodGet, http.StatusOK, "https://app.example", true},
		{"unlisted origin", []string{"https://app.example"}, "https://evil.example", http.MethodGet, http.StatusOK, "", false},
		{"no origin header", []string{"*"}, "", http.MethodGet, http.StatusOK, "", false},
		{"preflight", []string{"*"}, "https://app.example", http.MethodOptions, http.StatusNoContent, "*", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(corsMiddleware(tt.origins))
			router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tt.method, "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantAllow, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantVary, w.Header().Get("Vary") == "Origin")
			assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
		})
	}
}
