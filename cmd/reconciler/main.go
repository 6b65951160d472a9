package main

import (
	"context"
	"log/slog"
	"os"

	"marketsync/config"
	"marketsync/internal/delivery"
	"marketsync/internal/delivery/worker"
	"marketsync/internal/delivery/worker/handler"
	"marketsync/internal/infra/firebaseapp"
	"marketsync/internal/infra/guard"
	logs "marketsync/internal/infra/log"
	"marketsync/internal/infra/metrics"
	"marketsync/internal/infra/persistence"
	"marketsync/internal/infra/pubsub"
	"marketsync/internal/querycache"
	"marketsync/internal/usecase"
	"marketsync/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		firebaseapp.Module,
		persistence.Module,
		metrics.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		guard.Module,
		fx.Provide(
			func(m *metrics.CacheMetrics) querycache.Recorder { return m },
			func(m *metrics.ReconcileMetrics) usecase.ReconcileRecorder { return m },
			impl.NewQueryCache,
			impl.NewArchivalService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
