package handler

import (
	"log/slog"
	"strconv"

	"marketsync/internal/delivery/api/middleware"
	"marketsync/internal/delivery/api/response"
	domainerrors "marketsync/internal/domain/errors"
	"marketsync/internal/domain/service"
	"marketsync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
	Logger  *slog.Logger
}

// OfferHandler serves the storefront offer list.
type OfferHandler struct {
	offerUC usecase.OfferUsecase
	logger  *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		offerUC: params.OfferUC,
		logger:  params.Logger,
	}
}

// ListOffers handles GET /offers.
//
// The client relays its geolocation result as lat/lng or as geoError, one of
// permission-denied, position-unavailable, timeout or unsupported.
func (h *OfferHandler) ListOffers(c echo.Context) error {
	position, err := reportedPosition(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	list, err := h.offerUC.ListOffers(c.Request().Context(), &usecase.ListOffersInput{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Sort:     c.QueryParam("sort"),
		UserID:   middleware.GetUserID(c),
		Position: position,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, list)
}

// ViewState handles GET /offers/state.
func (h *OfferHandler) ViewState(c echo.Context) error {
	return response.OK(c, map[string]string{"state": string(h.offerUC.ViewState())})
}

func reportedPosition(c echo.Context) (service.ReportedPosition, error) {
	position := service.ReportedPosition{ErrorCode: c.QueryParam("geoError")}

	lat, err := optionalFloat(c.QueryParam("lat"))
	if err != nil {
		return position, domainerrors.ErrInvalidInput.WithDetails("lat must be a number")
	}
	lng, err := optionalFloat(c.QueryParam("lng"))
	if err != nil {
		return position, domainerrors.ErrInvalidInput.WithDetails("lng must be a number")
	}
	if lat != nil && (*lat < -90 || *lat > 90) {
		return position, domainerrors.ErrInvalidInput.WithDetails("lat must be between -90 and 90")
	}
	if lng != nil && (*lng < -180 || *lng > 180) {
		return position, domainerrors.ErrInvalidInput.WithDetails("lng must be between -180 and 180")
	}
	position.Latitude, position.Longitude = lat, lng

	return position, nil
}

func optionalFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil //nolint:nilnil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}

	return &v, nil
}
