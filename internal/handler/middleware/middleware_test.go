//go:build unit

package middleware_test

import (
	"net/http"
	"strings"
	"testing"

	"console-rental/internal/handler/middleware"
	"console-rental/internal/pkg/config"
	"console-rental/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(mw...)
	return engine
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	logger := middleware.NewLogger(config.NewTestConfig().Log)
	engine := newEngine(logger.LoggingMiddleware())

	var seen string
	engine.GET("/ping", func(c *gin.Context) {
		seen = middleware.GetRequestID(c)
		c.Status(http.StatusNoContent)
	})

	t.Run("generates an id when absent", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/ping", nil)
		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("echoes the incoming id", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, engine, http.MethodGet, "/ping", nil,
			map[string]string{middleware.RequestIDHeader: "req-123"})
		assert.Equal(t, "req-123", seen)
		assert.Equal(t, "req-123", rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("replaces oversized ids", func(t *testing.T) {
		long := strings.Repeat("x", 129)
		rec := httptest.PerformRequestWithHeaders(t, engine, http.MethodGet, "/ping", nil,
			map[string]string{middleware.RequestIDHeader: long})
		assert.NotEqual(t, long, seen)
		assert.Equal(t, seen, rec.Header().Get(middleware.RequestIDHeader))
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", middleware.ParseLevel("Debug").String())
	assert.Equal(t, "ERROR", middleware.ParseLevel("error").String())
	assert.Equal(t, "INFO", middleware.ParseLevel("whatever").String())
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(reg)
	engine := newEngine(metrics.Middleware())
	engine.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	httptest.PerformRequest(t, engine, http.MethodGet, "/items/a", nil)
	httptest.PerformRequest(t, engine, http.MethodGet, "/items/b", nil)
	httptest.PerformRequest(t, engine, http.MethodGet, "/nowhere", nil)

	expected := `
# HELP console_rental_http_requests_total HTTP requests by route, method and status code.
# TYPE console_rental_http_requests_total counter
console_rental_http_requests_total{method="GET",route="/items/:id",status="200"} 2
console_rental_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "console_rental_http_requests_total")
	assert.NoError(t, err)
}

func TestCustomRecovery(t *testing.T) {
	engine := newEngine(middleware.CustomRecovery())
	engine.GET("/panic", func(c *gin.Context) { panic("boom") })

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/panic", nil)
	httptest.AssertErrorKind(t, rec, http.StatusInternalServerError, "Internal", "Internal server error")
}

func TestErrorHandler(t *testing.T) {
	engine := newEngine(middleware.ErrorHandler())
	engine.GET("/silent", func(c *gin.Context) {})
	engine.GET("/status", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	t.Run("unwritten response becomes 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/silent", nil)
		httptest.AssertErrorKind(t, rec, http.StatusInternalServerError, "Internal", "")
	})

	t.Run("explicit status is kept", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/status", nil)
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})
}
