// Package router contains routing setup for the API delivery.
package router

import (
	"net/http"

	"marketsync/config"
	"marketsync/internal/delivery/api/middleware"
	"marketsync/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OfferHandler      *handler.OfferHandler
	StoreHandler      *handler.StoreHandler
	ListingHandler    *handler.ListingHandler
	CatalogHandler    *handler.CatalogHandler
	SuggestionHandler *handler.SuggestionHandler
	LocationHandler   *handler.LocationHandler
	HistoryHandler    *handler.HistoryHandler
	SessionHandler    *handler.SessionHandler
	ReconcileHandler  *handler.ReconcileHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Config            *config.Config

	MetricsHandler http.Handler `name:"metricsHandler" optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	offerHandler      *handler.OfferHandler
	storeHandler      *handler.StoreHandler
	listingHandler    *handler.ListingHandler
	catalogHandler    *handler.CatalogHandler
	suggestionHandler *handler.SuggestionHandler
	locationHandler   *handler.LocationHandler
	historyHandler    *handler.HistoryHandler
	sessionHandler    *handler.SessionHandler
	reconcileHandler  *handler.ReconcileHandler
	authMiddleware    *middleware.AuthMiddleware
	metricsHandler    http.Handler
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		offerHandler:      params.OfferHandler,
		storeHandler:      params.StoreHandler,
		listingHandler:    params.ListingHandler,
		catalogHandler:    params.CatalogHandler,
		suggestionHandler: params.SuggestionHandler,
		locationHandler:   params.LocationHandler,
		historyHandler:    params.HistoryHandler,
		sessionHandler:    params.SessionHandler,
		reconcileHandler:  params.ReconcileHandler,
		authMiddleware:    params.AuthMiddleware,
		metricsHandler:    params.MetricsHandler,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metricsHandler != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metricsHandler))
	}

	// Anonymous browsing is allowed; a valid token attaches the user.
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Identify)

	offersGroup := apiV1.Group("/offers")
	{
		offersGroup.GET("", r.offerHandler.ListOffers)
		offersGroup.GET("/state", r.offerHandler.ViewState)
	}

	apiV1.GET("/stores", r.storeHandler.ListStores)
	apiV1.GET("/catalog", r.catalogHandler.ListCanonicalProducts)

	productsGroup := apiV1.Group("/products")
	{
		productsGroup.POST("/check", r.suggestionHandler.CheckProduct)
		productsGroup.POST("/related", r.suggestionHandler.RelatedProducts)
		productsGroup.POST("/identify", r.suggestionHandler.IdentifyProduct)
	}

	historyGroup := apiV1.Group("/history")
	{
		historyGroup.GET("/products", r.historyHandler.ProductNames)
		historyGroup.GET("/products/:name", r.historyHandler.ProductHistory)
	}

	authGroup := apiV1.Group("/auth")
	authGroup.Use(r.authMiddleware.Authenticate)
	{
		authGroup.GET("/me", r.sessionHandler.Me)
		authGroup.POST("/signout", r.sessionHandler.SignOut)
	}

	// Owner routes share their prefixes with public reads, so authentication
	// is attached per route.
	authenticated := r.authMiddleware.Authenticate
	apiV1.GET("/stores/mine", r.storeHandler.GetOwnedStore, authenticated)
	apiV1.POST("/stores", r.storeHandler.CreateStore, authenticated)
	apiV1.PUT("/stores/:id", r.storeHandler.UpdateStore, authenticated)

	apiV1.POST("/advertisements", r.listingHandler.CreateAdvertisement, authenticated)
	apiV1.GET("/advertisements/mine", r.listingHandler.ListOwnAdvertisements, authenticated)

	locationGroup := apiV1.Group("/location")
	locationGroup.Use(authenticated)
	{
		locationGroup.GET("/preferred", r.locationHandler.GetPreferredLocation)
		locationGroup.PUT("/preferred", r.locationHandler.SavePreferredLocation)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.POST("/catalog", r.catalogHandler.CreateCanonicalProduct)
		adminGroup.GET("/suggestions", r.catalogHandler.ListSuggestions)
		adminGroup.PUT("/suggestions/:id/status", r.catalogHandler.SetSuggestionStatus)
		adminGroup.POST("/suggestions/:id/promote", r.catalogHandler.PromoteSuggestion)
		adminGroup.POST("/reconcile", r.reconcileHandler.Run)
	}
}
