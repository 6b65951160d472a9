package pubsub

import (
	"context"
	"log/slog"

	"marketsync/config"
	"marketsync/internal/domain/constants"
	"marketsync/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// discardPublisher drops market events. Used when no topic is configured, so
// archival and the catalog keep working without a broker.
type discardPublisher struct {
	logger *slog.Logger
}

func (p *discardPublisher) PublishMarketEvent(_ context.Context, event *service.MarketEvent) error {
	p.logger.Debug("Market event dropped, no topic configured",
		slog.String("type", event.Type),
		slog.String("request_id", event.RequestID),
	)

	return nil
}

func (p *discardPublisher) Close() error { return nil }

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the market topic backend from configuration.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Market topic not configured, events are dropped")

		return &discardPublisher{logger: params.Logger}, nil
	}

	publisher, err := openPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(func() error {
		params.Logger.Info("Closing market topic publisher", slog.String("provider", cfg.Provider))

		return publisher.Close()
	}))

	return publisher, nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub: localEndpoint is required for the local provider")
		}
		logger.Info("Pushing market events straight to the worker", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub: projectId and topicId are required for the google provider")
		}
		logger.Info("Publishing market events to Cloud Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	}

	return nil, errors.Errorf("pubsub: unknown provider %q", cfg.Provider)
}

// Module provides the market topic publisher
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
