package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"marketsync/config"
	"marketsync/internal/delivery"
	"marketsync/internal/delivery/middleware"
	"marketsync/internal/delivery/worker/handler"
	"marketsync/internal/domain/constants"
	"marketsync/internal/domain/lifecycle"
	"marketsync/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// reconciler worker: receives market topic pushes next to the scheduler
type workerServer struct {
	addr   string
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc             fx.Lifecycle
	Cfg            *config.Config
	Logger         *slog.Logger
	PushHandler    *handler.PushHandler
	MetricsHandler http.Handler `name:"metricsHandler" optional:"true"`
}

// NewServer creates the worker HTTP server.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)

	registerWorkerRoutes(e, params)

	srv := &workerServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(workerPort(params.Cfg))),
		logger: params.Logger,
		echo:   e,
	}
	params.Lc.Append(fx.StopHook(srv.stop))

	return srv, nil
}

func registerWorkerRoutes(e *echo.Echo, params ServerParams) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "role": "reconciler"})
	})
	if params.MetricsHandler != nil && params.Cfg.Metrics != nil && params.Cfg.Metrics.Enabled {
		e.GET(params.Cfg.Metrics.Path, echo.WrapHandler(params.MetricsHandler))
	}
	e.POST(constants.WorkerPushPath, params.PushHandler.HandlePush)
}

// the worker shares the API port unless the reconciler section overrides it
func workerPort(cfg *config.Config) int {
	if cfg.Reconciler != nil && cfg.Reconciler.Port != 0 {
		return cfg.Reconciler.Port
	}

	return cfg.HTTP.Port
}

func (s *workerServer) Serve(_ context.Context) error {
	s.logger.Info("Starting reconciler worker", slog.String("addr", s.addr))
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down reconciler worker")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
