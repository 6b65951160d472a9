package handler

import (
	"log/slog"

	"marketsync/internal/delivery/api/middleware"
	"marketsync/internal/delivery/api/response"
	"marketsync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	Logger    *slog.Logger
}

// ListingHandler handles advertisement publication by store owners
type ListingHandler struct {
	listingUC usecase.ListingUsecase
	logger    *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		listingUC: params.ListingUC,
		logger:    params.Logger,
	}
}

// CreateAdvertisement handles POST /advertisements
func (h *ListingHandler) CreateAdvertisement(c echo.Context) error {
	var req usecase.CreateAdvertisementInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid advertisement input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ad, err := h.listingUC.CreateAdvertisement(c.Request().Context(), middleware.GetUserID(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, ad)
}

// ListOwnAdvertisements handles GET /advertisements/mine
func (h *ListingHandler) ListOwnAdvertisements(c echo.Context) error {
	ads, err := h.listingUC.ListOwnAdvertisements(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, ads)
}
