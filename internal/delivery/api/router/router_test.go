package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketsync/config"
	"marketsync/internal/delivery/api/middleware"
	"marketsync/internal/delivery/api/router/handler"
	"marketsync/internal/delivery/api/validator"
	"marketsync/internal/domain/entity"
	"marketsync/internal/domain/service"
	mockService "marketsync/internal/mocks/service"
	mockUsecase "marketsync/internal/mocks/usecase"
	"marketsync/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerMocks struct {
	offer      *mockUsecase.MockOfferUsecase
	store      *mockUsecase.MockStoreUsecase
	catalog    *mockUsecase.MockCatalogUsecase
	session    *mockUsecase.MockSessionUsecase
	suggestion *mockUsecase.MockSuggestionUsecase
}

func newTestRouter(t *testing.T) (*echo.Echo, *routerMocks) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := &routerMocks{
		offer:      mockUsecase.NewMockOfferUsecase(t),
		store:      mockUsecase.NewMockStoreUsecase(t),
		catalog:    mockUsecase.NewMockCatalogUsecase(t),
		session:    mockUsecase.NewMockSessionUsecase(t),
		suggestion: mockUsecase.NewMockSuggestionUsecase(t),
	}
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}

	r := NewRouter(RouterParams{
		OfferHandler:      handler.NewOfferHandler(handler.OfferHandlerParams{OfferUC: m.offer, Logger: logger}),
		StoreHandler:      handler.NewStoreHandler(handler.StoreHandlerParams{StoreUC: m.store, Logger: logger}),
		ListingHandler:    handler.NewListingHandler(handler.ListingHandlerParams{ListingUC: mockUsecase.NewMockListingUsecase(t), Logger: logger}),
		CatalogHandler:    handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: m.catalog, Logger: logger}),
		SuggestionHandler: handler.NewSuggestionHandler(handler.SuggestionHandlerParams{SuggestionUC: m.suggestion, Logger: logger}),
		LocationHandler:   handler.NewLocationHandler(handler.LocationHandlerParams{LocationUC: mockUsecase.NewMockLocationUsecase(t), Logger: logger}),
		HistoryHandler:    handler.NewHistoryHandler(handler.HistoryHandlerParams{HistoryUC: mockUsecase.NewMockHistoryUsecase(t)}),
		SessionHandler:    handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: m.session, Logger: logger}),
		ReconcileHandler: handler.NewReconcileHandler(handler.ReconcileHandlerParams{
			ArchivalUC: mockUsecase.NewMockArchivalUsecase(t),
			Publisher:  mockService.NewMockEventPublisher(t),
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(m.session, logger),
		Config:         cfg,
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "marketsync_up 1\n")
		}),
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	r.RegisterRoutes(e)

	return e, m
}

func request(e *echo.Echo, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRouter_PublicRoutes(t *testing.T) {
	e, m := newTestRouter(t)
	m.store.EXPECT().ListStores(mock.Anything).Return([]*entity.Store{}, nil)
	m.offer.EXPECT().ViewState().Return(usecase.ViewIdle)

	assert.Equal(t, http.StatusOK, request(e, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, request(e, http.MethodGet, "/api/v1/stores", "").Code)
	assert.Equal(t, http.StatusOK, request(e, http.MethodGet, "/api/v1/offers/state", "").Code)

	rec := request(e, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "marketsync_up")
}

func TestRouter_OwnerRoutesRequireSignIn(t *testing.T) {
	e, _ := newTestRouter(t)

	for _, target := range []string{"/api/v1/stores/mine", "/api/v1/advertisements/mine", "/api/v1/location/preferred", "/api/v1/auth/me"} {
		assert.Equal(t, http.StatusUnauthorized, request(e, http.MethodGet, target, "").Code, target)
	}
}

func TestRouter_AdminRoutes(t *testing.T) {
	e, m := newTestRouter(t)
	m.session.EXPECT().Authenticate(mock.Anything, "user-token").Return(&service.Identity{UID: "u1"}, nil)
	m.session.EXPECT().Authenticate(mock.Anything, "admin-token").Return(&service.Identity{UID: "a1", Admin: true}, nil)
	m.catalog.EXPECT().ListSuggestions(mock.Anything).Return(&usecase.SuggestionQueue{}, nil)

	assert.Equal(t, http.StatusUnauthorized, request(e, http.MethodGet, "/api/v1/admin/suggestions", "").Code)
	assert.Equal(t, http.StatusForbidden, request(e, http.MethodGet, "/api/v1/admin/suggestions", "user-token").Code)
	assert.Equal(t, http.StatusOK, request(e, http.MethodGet, "/api/v1/admin/suggestions", "admin-token").Code)
}
