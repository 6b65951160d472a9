package usecase

import (
	"context"

	"marketsync/internal/domain/entity"
)

// StoreInput represents the store registration form
type StoreInput struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Address     string   `json:"address" validate:"required,min=5"`
	City        string   `json:"city" validate:"required,min=2"`
	State       string   `json:"state" validate:"required,min=2"`
	ZipCode     string   `json:"zipCode" validate:"required,min=5"`
	Email       string   `json:"email" validate:"required,email"`
	Phone       string   `json:"phone" validate:"required,min=10"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description" validate:"max=500"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,longitude"`
}

// StoreUsecase defines store registration and lookup
type StoreUsecase interface {
	ListStores(ctx context.Context) ([]*entity.Store, error)

	// GetOwnedStore returns nil when the user has not registered a store.
	GetOwnedStore(ctx context.Context, userID string) (*entity.Store, error)

	CreateStore(ctx context.Context, userID string, input *StoreInput) (*entity.Store, error)
	UpdateStore(ctx context.Context, userID, storeID string, input *StoreInput) (*entity.Store, error)
}
