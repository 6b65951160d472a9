package handler

import (
	"net/http"
	"time"

	"marketsync/internal/delivery/api/response"
	deliverycontext "marketsync/internal/delivery/context"
	"marketsync/internal/domain/service"
	"marketsync/internal/errors"
	"marketsync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReconcileHandlerParams holds dependencies for ReconcileHandler, injected by Fx.
type ReconcileHandlerParams struct {
	fx.In

	ArchivalUC usecase.ArchivalUsecase
	Publisher  service.EventPublisher
}

// ReconcileHandler lets administrators trigger an archival run.
type ReconcileHandler struct {
	archivalUC usecase.ArchivalUsecase
	publisher  service.EventPublisher
}

// NewReconcileHandler is the constructor for ReconcileHandler
func NewReconcileHandler(params ReconcileHandlerParams) *ReconcileHandler {
	return &ReconcileHandler{
		archivalUC: params.ArchivalUC,
		publisher:  params.Publisher,
	}
}

// Run handles POST /admin/reconcile. With ?async=true the run is handed to
// the reconciler worker and 202 is returned.
func (h *ReconcileHandler) Run(c echo.Context) error {
	ctx := c.Request().Context()

	if c.QueryParam("async") == "true" {
		err := h.publisher.PublishMarketEvent(ctx, &service.MarketEvent{
			Type:       service.EventReconcileRequested,
			RequestID:  deliverycontext.GetRequestID(c),
			OccurredAt: time.Now(),
		})
		if err != nil {
			return errors.Wrap(err, "request reconciliation")
		}

		return response.Success(c, http.StatusAccepted, map[string]string{"status": "requested"})
	}

	result, err := h.archivalUC.RunOnce(ctx, usecase.TriggerAPIManual)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, result)
}
