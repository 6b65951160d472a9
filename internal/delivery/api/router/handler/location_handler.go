package handler

import (
	"log/slog"

	"marketsync/internal/delivery/api/middleware"
	"marketsync/internal/delivery/api/response"
	"marketsync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler handles the user's preferred location
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// GetPreferredLocation handles GET /location/preferred; data is null when
// nothing was saved.
func (h *LocationHandler) GetPreferredLocation(c echo.Context) error {
	location, err := h.locationUC.GetPreferredLocation(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, location)
}

// SavePreferredLocation handles PUT /location/preferred
func (h *LocationHandler) SavePreferredLocation(c echo.Context) error {
	var req usecase.PreferredLocationInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	location, err := h.locationUC.SavePreferredLocation(c.Request().Context(), middleware.GetUserID(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, location)
}
