package handler

import (
	"log/slog"

	"marketsync/internal/delivery/api/middleware"
	"marketsync/internal/delivery/api/response"
	"marketsync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
	Logger  *slog.Logger
}

// StoreHandler holds dependencies for store-related handlers
type StoreHandler struct {
	storeUC usecase.StoreUsecase
	logger  *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeUC: params.StoreUC,
		logger:  params.Logger,
	}
}

// ListStores handles retrieving every registered store
func (h *StoreHandler) ListStores(c echo.Context) error {
	stores, err := h.storeUC.ListStores(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, stores)
}

// GetOwnedStore handles retrieving the caller's store; data is null when
// none is registered.
func (h *StoreHandler) GetOwnedStore(c echo.Context) error {
	store, err := h.storeUC.GetOwnedStore(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, store)
}

// CreateStore handles store registration
func (h *StoreHandler) CreateStore(c echo.Context) error {
	var req usecase.StoreInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid store input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	store, err := h.storeUC.CreateStore(c.Request().Context(), middleware.GetUserID(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, store)
}

// UpdateStore handles editing the caller's store
func (h *StoreHandler) UpdateStore(c echo.Context) error {
	var req usecase.StoreInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid store input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	store, err := h.storeUC.UpdateStore(c.Request().Context(), middleware.GetUserID(c), c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, store)
}
