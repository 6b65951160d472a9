package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketsync/config"
	deliverycontext "marketsync/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/fail", func(c echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway, "upstream") })
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	return e
}

func get(e *echo.Echo, path, requestID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRequestID(t *testing.T) {
	var buf bytes.Buffer
	e := newLoggedEcho(&buf, false)

	rec := get(e, "/ok", "client-id")
	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))

	rec = get(e, "/ok", "")
	assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)

	rec = get(e, "/ok", strings.Repeat("x", 200))
	assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("successes only in debug", func(t *testing.T) {
		var buf bytes.Buffer
		get(newLoggedEcho(&buf, false), "/ok", "")
		assert.Empty(t, buf.String())

		get(newLoggedEcho(&buf, true), "/ok", "r-1")
		assert.Contains(t, buf.String(), `"request_id":"r-1"`)
		assert.Contains(t, buf.String(), `"route":"/ok"`)
	})

	t.Run("failures always with their status", func(t *testing.T) {
		var buf bytes.Buffer
		rec := get(newLoggedEcho(&buf, false), "/fail", "")

		require.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
		assert.Contains(t, buf.String(), `"status":502`)
	})

	t.Run("health probes are not logged", func(t *testing.T) {
		var buf bytes.Buffer
		get(newLoggedEcho(&buf, true), "/health", "")
		assert.Empty(t, buf.String())
	})
}
