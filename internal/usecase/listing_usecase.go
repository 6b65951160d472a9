package usecase

import (
	"context"

	"marketsync/internal/domain/entity"
)

// Listing validity bounds in days.
const (
	MinValidityDays = 1
	MaxValidityDays = 7
)

// CreateAdvertisementInput represents the product listing form
type CreateAdvertisementInput struct {
	Name         string  `json:"name" validate:"required,min=3,max=100"`
	Description  string  `json:"description" validate:"max=500"`
	Price        float64 `json:"price" validate:"gt=0"`
	Category     string  `json:"category" validate:"required"`
	ImageURL     string  `json:"imageUrl" validate:"omitempty,url"`
	Stock        *int    `json:"stock" validate:"omitempty,gte=0"`
	ValidityDays int     `json:"validityDays" validate:"min=1,max=7"`
}

// ListingUsecase defines advertisement publication by store owners
type ListingUsecase interface {
	// CreateAdvertisement publishes a listing for the user's store.
	CreateAdvertisement(ctx context.Context, userID string, input *CreateAdvertisementInput) (*entity.Advertisement, error)

	// ListOwnAdvertisements returns every advertisement of the user's store.
	ListOwnAdvertisements(ctx context.Context, userID string) ([]*entity.Advertisement, error)
}
