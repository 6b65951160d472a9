package handler

import (
	"net/url"

	"marketsync/internal/delivery/api/response"
	domainerrors "marketsync/internal/domain/errors"
	"marketsync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HistoryHandlerParams holds dependencies for HistoryHandler, injected by Fx.
type HistoryHandlerParams struct {
	fx.In

	HistoryUC usecase.HistoryUsecase
}

// HistoryHandler serves price monitoring.
type HistoryHandler struct {
	historyUC usecase.HistoryUsecase
}

// NewHistoryHandler is the constructor for HistoryHandler
func NewHistoryHandler(params HistoryHandlerParams) *HistoryHandler {
	return &HistoryHandler{historyUC: params.HistoryUC}
}

// ProductNames handles GET /history/products
func (h *HistoryHandler) ProductNames(c echo.Context) error {
	names, err := h.historyUC.ProductNames(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, names)
}

// ProductHistory handles GET /history/products/:name
func (h *HistoryHandler) ProductHistory(c echo.Context) error {
	name, err := url.PathUnescape(c.Param("name"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("malformed product name"))
	}

	history, err := h.historyUC.ProductHistory(c.Request().Context(), name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, history)
}
