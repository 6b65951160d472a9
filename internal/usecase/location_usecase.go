package usecase

import (
	"context"

	"marketsync/internal/domain/entity"
	"marketsync/internal/domain/service"
)

// PreferredLocationInput represents the preferred location form
type PreferredLocationInput struct {
	Address   string  `json:"address" validate:"max=200"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// LocationUsecase defines the interface for the distance origin
type LocationUsecase interface {
	// GetPreferredLocation returns nil when none was saved.
	GetPreferredLocation(ctx context.Context, userID string) (*entity.PreferredLocation, error)
	SavePreferredLocation(ctx context.Context, userID string, input *PreferredLocationInput) (*entity.PreferredLocation, error)

	// ResolveOrigin prefers the live position, then the preferred location.
	// It never fails; an unknown origin leaves distances empty.
	ResolveOrigin(ctx context.Context, userID string, geo service.Geolocator) entity.Origin
}
