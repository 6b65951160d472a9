package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketsync/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PushesDecodableMessage(t *testing.T) {
	received := make(chan PushMessage, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg PushMessage
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		received <- msg
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	pub := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := &service.MarketEvent{Type: service.EventAdvertisementArchived, RequestID: "req-1", AdvertisementID: "a1", Price: 10}

	require.NoError(t, pub.PublishMarketEvent(context.Background(), event))

	msg := <-received
	assert.Equal(t, service.EventAdvertisementArchived, msg.Message.Attributes["type"])
	assert.Equal(t, "a1", msg.Message.Attributes["advertisement_id"])

	decoded, err := msg.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, "a1", decoded.AdvertisementID)
	assert.Equal(t, 10.0, decoded.Price)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	pub := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := pub.PublishMarketEvent(context.Background(), &service.MarketEvent{Type: service.EventReconcileRequested})
	assert.Error(t, err)
}
