package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"marketsync/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// cloudPublisher sends market events to a Cloud Pub/Sub topic. The reconciler
// worker receives them through a push subscription.
type cloudPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and checks that topicID exists.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "pubsub: new client")
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "pubsub: topic %s", topic)
	}

	return &cloudPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		topic:     topic,
		logger:    logger,
	}, nil
}

// PublishMarketEvent blocks until the server acknowledged the message.
func (p *cloudPublisher) PublishMarketEvent(ctx context.Context, event *service.MarketEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal market event")
	}

	id, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish %s to %s", event.Type, p.topic)
	}

	p.logger.Debug("Market event published",
		slog.String("type", event.Type),
		slog.String("message_id", id),
	)

	return nil
}

// Close flushes pending messages before closing the client.
func (p *cloudPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}

// eventAttributes let subscriptions filter on type and carry the request id
// into the worker logs.
func eventAttributes(event *service.MarketEvent) map[string]string {
	attributes := map[string]string{"type": event.Type}
	for key, value := range map[string]string{
		"advertisement_id": event.AdvertisementID,
		"suggestion_id":    event.SuggestionID,
		"request_id":       event.RequestID,
	} {
		if value != "" {
			attributes[key] = value
		}
	}

	return attributes
}
