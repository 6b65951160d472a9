// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"marketsync/internal/domain/entity"
	"marketsync/internal/domain/service"
)

// ActiveViewState is the materialization state of the active advertisement view.
type ActiveViewState string

const (
	ViewIdle         ActiveViewState = "idle"
	ViewRawFetched   ActiveViewState = "raw-fetched"
	ViewReconciling  ActiveViewState = "reconciling"
	ViewMaterialized ActiveViewState = "active-materialized"
)

// ListOffersInput selects and orders the offers shown on the storefront.
type ListOffersInput struct {
	Category string
	Search   string
	Sort     string

	// UserID is empty for anonymous visitors.
	UserID string

	// Position is the client's geolocation result.
	Position service.Geolocator
}

// OfferList is the storefront view.
type OfferList struct {
	Offers     []*entity.Offer   `json:"offers"`
	Origin     entity.Origin     `json:"origin"`
	Categories []entity.Category `json:"categories"`
}

// OfferUsecase derives the storefront view from active advertisements.
type OfferUsecase interface {
	ListOffers(ctx context.Context, input *ListOffersInput) (*OfferList, error)

	// ActiveAdvertisements returns the unexpired, unarchived advertisements.
	// It reconciles the raw set before materializing the view.
	ActiveAdvertisements(ctx context.Context) ([]*entity.Advertisement, error)

	ViewState() ActiveViewState
}
