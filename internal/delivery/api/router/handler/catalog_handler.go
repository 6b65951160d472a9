package handler

import (
	"log/slog"

	"marketsync/internal/delivery/api/response"
	"marketsync/internal/domain/entity"
	"marketsync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves catalog administration.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// SetSuggestionStatusRequest is the body of PUT /admin/suggestions/:id/status.
type SetSuggestionStatusRequest struct {
	Status entity.SuggestionStatus `json:"status" validate:"required,oneof=reviewed rejected pending"`
}

// ListCanonicalProducts handles GET /catalog
func (h *CatalogHandler) ListCanonicalProducts(c echo.Context) error {
	products, err := h.catalogUC.ListCanonicalProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

// CreateCanonicalProduct handles POST /admin/catalog
func (h *CatalogHandler) CreateCanonicalProduct(c echo.Context) error {
	var req usecase.CanonicalProductInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.catalogUC.CreateCanonicalProduct(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, product)
}

// ListSuggestions handles GET /admin/suggestions
func (h *CatalogHandler) ListSuggestions(c echo.Context) error {
	queue, err := h.catalogUC.ListSuggestions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, queue)
}

// SetSuggestionStatus handles PUT /admin/suggestions/:id/status
func (h *CatalogHandler) SetSuggestionStatus(c echo.Context) error {
	var req SetSuggestionStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.catalogUC.SetSuggestionStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]any{"id": c.Param("id"), "status": req.Status})
}

// PromoteSuggestion handles POST /admin/suggestions/:id/promote. The product
// and the suggestion status are written together.
func (h *CatalogHandler) PromoteSuggestion(c echo.Context) error {
	var req usecase.CanonicalProductInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.catalogUC.PromoteSuggestion(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, product)
}
