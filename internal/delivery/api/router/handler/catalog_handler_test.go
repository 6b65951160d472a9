package handler

import (
	"net/http"
	"testing"

	"marketsync/internal/domain/entity"
	domainerrors "marketsync/internal/domain/errors"
	"marketsync/internal/domain/service"
	mockUsecase "marketsync/internal/mocks/usecase"
	"marketsync/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var admin = &service.Identity{UID: "admin-1", Admin: true}

func TestCatalogHandler_PromoteSuggestion(t *testing.T) {
	body := `{"name":"Widget 3000","category":"Electronics","description":"A widget"}`

	t.Run("creates the product", func(t *testing.T) {
		catalogUC := mockUsecase.NewMockCatalogUsecase(t)
		h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()})

		catalogUC.EXPECT().
			PromoteSuggestion(mock.Anything, "sg1", &usecase.CanonicalProductInput{
				Name:        "Widget 3000",
				Category:    "Electronics",
				Description: "A widget",
			}).
			Return(&entity.CanonicalProduct{ID: "p1", Name: "Widget 3000", NormalizedName: "widget 3000"}, nil)

		rec := serve(t, newTestEcho(), http.MethodPost, "/admin/suggestions/:id/promote", "/admin/suggestions/sg1/promote", body, admin, h.PromoteSuggestion)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got entity.CanonicalProduct
		decodeData(t, rec, &got)
		assert.Equal(t, "p1", got.ID)
	})

	t.Run("already reviewed", func(t *testing.T) {
		catalogUC := mockUsecase.NewMockCatalogUsecase(t)
		h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()})

		catalogUC.EXPECT().
			PromoteSuggestion(mock.Anything, "sg1", mock.Anything).
			Return(nil, domainerrors.ErrSuggestionAlreadyReviewed)

		rec := serve(t, newTestEcho(), http.MethodPost, "/admin/suggestions/:id/promote", "/admin/suggestions/sg1/promote", body, admin, h.PromoteSuggestion)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing category is rejected before the usecase", func(t *testing.T) {
		catalogUC := mockUsecase.NewMockCatalogUsecase(t)
		h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()})

		rec := serve(t, newTestEcho(), http.MethodPost, "/admin/suggestions/:id/promote", "/admin/suggestions/sg1/promote",
			`{"name":"Widget 3000"}`, admin, h.PromoteSuggestion)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
	})
}

func TestCatalogHandler_SetSuggestionStatus(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockErr    error
		callsUC    bool
		wantStatus int
	}{
		{name: "rejected", body: `{"status":"rejected"}`, callsUC: true, wantStatus: http.StatusOK},
		{name: "reviewed", body: `{"status":"reviewed"}`, callsUC: true, wantStatus: http.StatusOK},
		{name: "added-to-catalog only through promotion", body: `{"status":"added-to-catalog"}`, wantStatus: http.StatusBadRequest},
		{name: "unknown suggestion", body: `{"status":"rejected"}`, callsUC: true, mockErr: domainerrors.ErrSuggestionNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalogUC := mockUsecase.NewMockCatalogUsecase(t)
			h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()})
			if tt.callsUC {
				catalogUC.EXPECT().
					SetSuggestionStatus(mock.Anything, "sg1", mock.AnythingOfType("entity.SuggestionStatus")).
					Return(tt.mockErr)
			}

			rec := serve(t, newTestEcho(), http.MethodPut, "/admin/suggestions/:id/status", "/admin/suggestions/sg1/status", tt.body, admin, h.SetSuggestionStatus)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCatalogHandler_ListSuggestions(t *testing.T) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()})

	catalogUC.EXPECT().ListSuggestions(mock.Anything).Return(&usecase.SuggestionQueue{
		Pending:  []*entity.SuggestedNewProduct{{ID: "sg1", ProductName: "Widget123", Status: entity.StatusPending}},
		Reviewed: []*entity.SuggestedNewProduct{},
	}, nil)

	rec := serve(t, newTestEcho(), http.MethodGet, "/admin/suggestions", "/admin/suggestions", "", admin, h.ListSuggestions)

	require.Equal(t, http.StatusOK, rec.Code)
	var got usecase.SuggestionQueue
	decodeData(t, rec, &got)
	require.Len(t, got.Pending, 1)
	assert.Equal(t, "sg1", got.Pending[0].ID)
	assert.Empty(t, got.Reviewed)
}
