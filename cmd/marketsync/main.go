package main

import (
	"context"
	"log/slog"
	"os"

	"marketsync/config"
	"marketsync/internal/delivery"
	"marketsync/internal/delivery/api"
	"marketsync/internal/delivery/api/middleware"
	"marketsync/internal/delivery/api/router/handler"
	"marketsync/internal/infra/ai"
	"marketsync/internal/infra/auth"
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
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
		auth.Module,
		ai.Module,
		pubsub.Module,
		guard.Module,
		fx.Provide(
			func(m *metrics.CacheMetrics) querycache.Recorder { return m },
			func(m *metrics.ReconcileMetrics) usecase.ReconcileRecorder { return m },
			impl.NewQueryCache,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewArchivalService,
			impl.NewOfferService,
			impl.NewStoreService,
			impl.NewListingService,
			impl.NewCatalogService,
			impl.NewSuggestionService,
			impl.NewLocationService,
			impl.NewHistoryService,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewOfferHandler,
			handler.NewStoreHandler,
			handler.NewListingHandler,
			handler.NewCatalogHandler,
			handler.NewSuggestionHandler,
			handler.NewLocationHandler,
			handler.NewHistoryHandler,
			handler.NewSessionHandler,
			handler.NewReconcileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
