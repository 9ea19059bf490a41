package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truepath/advocates-site/internal/platform/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// bufferLogger returns a JSON logger and the buffer it writes to.
func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

// logLines decodes every JSON line in buf.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &m))
		lines = append(lines, m)
	}

	return lines
}

func TestIDMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		middleware gin.HandlerFunc
		header     string
		get        func(*gin.Context) string
		logKey     string
	}{
		{
			name:       "request id",
			middleware: RequestID(),
			header:     HeaderRequestID,
			get:        GetRequestID,
			logKey:     "request_id",
		},
		{
			name:       "correlation id",
			middleware: CorrelationID(),
			header:     HeaderCorrelationID,
			get:        GetCorrelationID,
			logKey:     "correlation_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" generated", func(t *testing.T) {
			t.Parallel()

			logger, buf := bufferLogger()

			var captured string

			router := gin.New()
			router.Use(Recovery(logger), tt.middleware)
			router.GET("/", func(c *gin.Context) {
				captured = tt.get(c)
				logging.FromContext(c.Request.Context()).Info("inside")
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			_, err := uuid.Parse(captured)
			require.NoError(t, err)
			assert.Equal(t, captured, w.Header().Get(tt.header))

			lines := logLines(t, buf)
			require.Len(t, lines, 1)
			assert.Equal(t, captured, lines[0][tt.logKey])
		})

		t.Run(tt.name+" propagated", func(t *testing.T) {
			t.Parallel()

			var captured string

			router := gin.New()
			router.Use(tt.middleware)
			router.GET("/", func(c *gin.Context) {
				captured = tt.get(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(tt.header, "upstream-123")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, "upstream-123", captured)
			assert.Equal(t, "upstream-123", w.Header().Get(tt.header))
		})
	}
}

func TestGetIDs_OutsideMiddleware(t *testing.T) {
	t.Parallel()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
	assert.Empty(t, GetCorrelationID(c))
}

func TestLogging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel string
		skipped   bool
	}{
		{name: "page request", path: "/", status: http.StatusOK, wantLevel: "INFO"},
		{name: "client error", path: "/api/v1/content/sections/nope", status: http.StatusNotFound, wantLevel: "WARN"},
		{name: "server error", path: "/api/v1/content", status: http.StatusInternalServerError, wantLevel: "ERROR"},
		{name: "probe skipped", path: "/-/live", status: http.StatusOK, skipped: true},
		{name: "asset skipped", path: "/static/site.js", status: http.StatusOK, skipped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, buf := bufferLogger()

			router := gin.New()
			router.Use(Logging(logger))
			router.NoRoute(func(c *gin.Context) { c.Status(tt.status) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, tt.status, w.Code)

			lines := logLines(t, buf)
			if tt.skipped {
				assert.Empty(t, lines)
				return
			}

			require.Len(t, lines, 1)
			assert.Equal(t, "request completed", lines[0]["msg"])
			assert.Equal(t, tt.wantLevel, lines[0]["level"])
			assert.Equal(t, tt.path, lines[0]["path"])
			assert.EqualValues(t, tt.status, lines[0]["status"])
		})
	}
}

func TestLogging_CustomSkipPrefixes(t *testing.T) {
	t.Parallel()

	logger, buf := bufferLogger()

	router := gin.New()
	router.Use(Logging(logger, "/healthz"))
	router.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/-/live", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/-/live", nil))

	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "/-/live", lines[0]["path"])
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		path            string
		wantContentType string
		wantBody        string
	}{
		{
			name:            "page gets html",
			path:            "/",
			wantContentType: "text/html; charset=utf-8",
			wantBody:        "Something went wrong",
		},
		{
			name:            "api gets error envelope",
			path:            "/api/v1/content",
			wantContentType: "application/json; charset=utf-8",
			wantBody:        `"code":"INTERNAL_ERROR"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, buf := bufferLogger()

			router := gin.New()
			router.Use(Recovery(logger))
			router.GET(tt.path, func(*gin.Context) { panic("boom") })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, tt.wantContentType, w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), tt.wantBody)

			lines := logLines(t, buf)
			require.Len(t, lines, 1)
			assert.Equal(t, "panic recovered", lines[0]["msg"])
			assert.Equal(t, "boom", lines[0]["error"])
			assert.Contains(t, lines[0]["stack"], "runtime/debug.Stack")
		})
	}
}

func TestRecovery_AfterWrite(t *testing.T) {
	t.Parallel()

	logger, _ := bufferLogger()

	router := gin.New()
	router.Use(Recovery(logger))
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "partial")
		panic("late")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "partial", w.Body.String())
}

func TestWantsJSON(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"/":                false,
		"/thanks":          false,
		"/api/v1/content":  true,
		"/-/ready":         true,
		"/static/site.js":  false,
		"/apiary-not-api/": false,
	}

	for path, want := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, path, nil)

		assert.Equal(t, want, WantsJSON(c), path)
	}
}

func TestTimeout(t *testing.T) {
	t.Parallel()

	var (
		deadline time.Time
		ok       bool
	)

	router := gin.New()
	router.Use(Timeout(50 * time.Millisecond))
	router.GET("/", func(c *gin.Context) {
		deadline, ok = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	start := time.Now()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, ok)
	assert.WithinDuration(t, start.Add(50*time.Millisecond), deadline, 40*time.Millisecond)
}
