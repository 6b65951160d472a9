package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"marketsync/config"
	deliverycontext "marketsync/internal/delivery/context"
	"marketsync/internal/domain/constants"
	domainerrors "marketsync/internal/domain/errors"
	"marketsync/internal/domain/service"
	"marketsync/internal/errors"
	"marketsync/internal/infra/pubsub"
	"marketsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// TokenVerifier validates the OIDC token Pub/Sub attaches to push requests.
type TokenVerifier func(req *http.Request) error

// PushHandler handles Pub/Sub push messages of the market topic
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    TokenVerifier
	logger         *slog.Logger
	archivalUC     usecase.ArchivalUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	ArchivalUC usecase.ArchivalUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Pub/Sub pushes outside local runs carry a token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvLocal

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		archivalUC:     params.ArchivalUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
//
// 503 asks Pub/Sub to redeliver; every other outcome is acknowledged so a
// poison message is not retried forever.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.DecodeEvent()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode market event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.processEvent(ctx, event); err != nil {
		reqLogger.Error("[Worker] Failed to process market event",
			slog.String("type", event.Type),
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *PushHandler) processEvent(ctx context.Context, event *service.MarketEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	switch event.Type {
	case service.EventReconcileRequested:
		result, err := h.archivalUC.RunOnce(ctx, usecase.TriggerPush)
		if err != nil {
			var unavailable *domainerrors.StoreUnavailableError
			if errors.As(err, &unavailable) {
				return newRetryableError(err)
			}

			return err
		}
		logger.Info("[Worker] Reconciliation finished",
			slog.Int("archived", len(result.Archived)),
			slog.Int("skipped", result.Skipped),
			slog.Int("active", result.ActiveCount),
		)

	case service.EventAdvertisementArchived:
		logger.Info("[Worker] Advertisement archived",
			slog.String("advertisement_id", event.AdvertisementID),
			slog.String("history_entry_id", event.HistoryEntryID),
			slog.String("product_name", event.ProductName),
		)

	case service.EventSuggestionCreated:
		logger.Info("[Worker] Product suggestion awaiting review",
			slog.String("suggestion_id", event.SuggestionID),
			slog.String("product_name", event.ProductName),
		)

	default:
		logger.Warn("[Worker] Ignoring unknown market event", slog.String("type", event.Type))
	}

	return nil
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.MarketEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken verifies the OIDC token attached by Pub/Sub push
func verifyPubSubToken(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
