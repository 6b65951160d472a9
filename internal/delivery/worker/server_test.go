package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketsync/config"
	"marketsync/internal/delivery/worker/handler"
	"marketsync/internal/domain/constants"
	mockUsecase "marketsync/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestWorkerPort(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.Port = 8080
	assert.Equal(t, 8080, workerPort(cfg))

	cfg.Reconciler = &config.ReconcilerConfig{Port: 8081}
	assert.Equal(t, 8081, workerPort(cfg))
}

func TestRegisterWorkerRoutes(t *testing.T) {
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	cfg.Env.Env = constants.EnvLocal
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	registerWorkerRoutes(e, ServerParams{
		Cfg:    cfg,
		Logger: logger,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:     cfg,
			Logger:     logger,
			ArchivalUC: mockUsecase.NewMockArchivalUsecase(t),
		}),
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}),
	})

	for _, tc := range []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusTeapot},
		// an empty body is not a push envelope
		{http.MethodPost, constants.WorkerPushPath, http.StatusBadRequest},
		{http.MethodGet, constants.WorkerPushPath, http.StatusMethodNotAllowed},
	} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, tc.want, rec.Code, "%s %s", tc.method, tc.path)
	}
}
