package handler

import (
	"io"
	"log/slog"
	"net/http"

	"marketsync/internal/delivery/api/middleware"
	"marketsync/internal/delivery/api/response"
	"marketsync/internal/domain/entity"
	domainerrors "marketsync/internal/domain/errors"
	"marketsync/internal/errors"
	"marketsync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const maxImageSize = 4 << 20

// SuggestionHandlerParams holds dependencies for SuggestionHandler, injected by Fx.
type SuggestionHandlerParams struct {
	fx.In

	SuggestionUC usecase.SuggestionUsecase
	Logger       *slog.Logger
}

// SuggestionHandler serves catalog checks and assistant lookups.
type SuggestionHandler struct {
	suggestionUC usecase.SuggestionUsecase
	logger       *slog.Logger
}

// NewSuggestionHandler is the constructor for SuggestionHandler
func NewSuggestionHandler(params SuggestionHandlerParams) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionUC: params.SuggestionUC,
		logger:       params.Logger,
	}
}

// CheckProductRequest is the body of POST /products/check.
type CheckProductRequest struct {
	ProductName string                  `json:"productName" validate:"max=200"`
	Source      entity.SuggestionSource `json:"source" validate:"omitempty,oneof=image-analysis search-bar"`
	Lang        string                  `json:"lang" validate:"omitempty,max=10"`
}

// RelatedProductsRequest is the body of POST /products/related.
type RelatedProductsRequest struct {
	ProductName string `json:"productName" validate:"required,max=200"`
	Lang        string `json:"lang" validate:"omitempty,max=10"`
}

// CheckProduct handles POST /products/check. An empty name is answered with
// the neutral outcome rather than a validation error.
func (h *SuggestionHandler) CheckProduct(c echo.Context) error {
	var req CheckProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product check input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Source == "" {
		req.Source = entity.SourceSearchBar
	}

	result := h.suggestionUC.CheckAndSuggest(c.Request().Context(), &usecase.CheckProductInput{
		ProductName: req.ProductName,
		Source:      req.Source,
		Lang:        req.Lang,
		UserID:      middleware.GetUserID(c),
	})

	return response.OK(c, result)
}

// RelatedProducts handles POST /products/related
func (h *SuggestionHandler) RelatedProducts(c echo.Context) error {
	var req RelatedProductsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid related products input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	names, err := h.suggestionUC.RelatedProducts(c.Request().Context(), req.ProductName, req.Lang)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string][]string{"relatedProducts": names})
}

// IdentifyProduct handles POST /products/identify with a multipart "image"
// field.
func (h *SuggestionHandler) IdentifyProduct(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return response.BindingError(c, "An image file is required")
	}
	if file.Size > maxImageSize {
		return response.BadRequest(c, "IMAGE_TOO_LARGE", "Image must be 4MB or smaller")
	}

	src, err := file.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded image")
	}
	defer src.Close()

	image, err := io.ReadAll(io.LimitReader(src, maxImageSize))
	if err != nil {
		return errors.Wrap(err, "read uploaded image")
	}
	if len(image) == 0 {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("image is empty"))
	}

	mimeType := file.Header.Get(echo.HeaderContentType)
	if mimeType == "" || mimeType == echo.MIMEOctetStream {
		mimeType = http.DetectContentType(image)
	}

	result, err := h.suggestionUC.IdentifyProduct(c.Request().Context(), &usecase.IdentifyProductInput{
		Image:    image,
		MIMEType: mimeType,
		Lang:     c.FormValue("lang"),
		UserID:   middleware.GetUserID(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, result)
}
