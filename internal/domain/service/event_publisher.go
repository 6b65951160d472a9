package service

import (
	"context"
	"time"
)

// Event types published to the market topic.
const (
	EventAdvertisementArchived = "advertisement.archived"
	EventSuggestionCreated     = "suggestion.created"
	EventReconcileRequested    = "reconcile.requested"
)

// MarketEvent is an event consumed by the reconciler worker and downstream
// subscribers.
type MarketEvent struct {
	Type            string    `json:"type"`
	RequestID       string    `json:"request_id,omitempty"` // For distributed tracing
	AdvertisementID string    `json:"advertisement_id,omitempty"`
	HistoryEntryID  string    `json:"history_entry_id,omitempty"`
	ProductName     string    `json:"product_name,omitempty"`
	Price           float64   `json:"price,omitempty"`
	StoreID         string    `json:"store_id,omitempty"`
	SuggestionID    string    `json:"suggestion_id,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMarketEvent publishes one event for async processing
	PublishMarketEvent(ctx context.Context, event *MarketEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
