package usecase

import (
	"context"

	"marketsync/internal/domain/entity"
)

// CanonicalProductInput represents the input for creating a catalog product
type CanonicalProductInput struct {
	Name            string `json:"name" validate:"required,max=120"`
	Category        string `json:"category" validate:"required"`
	Description     string `json:"description" validate:"max=1000"`
	DefaultImageURL string `json:"defaultImageUrl" validate:"omitempty,url"`
}

// SuggestionQueue splits suggestions by review state.
type SuggestionQueue struct {
	Pending  []*entity.SuggestedNewProduct `json:"pending"`
	Reviewed []*entity.SuggestedNewProduct `json:"reviewed"`
}

// CatalogUsecase defines catalog administration.
type CatalogUsecase interface {
	ListCanonicalProducts(ctx context.Context) ([]*entity.CanonicalProduct, error)
	CreateCanonicalProduct(ctx context.Context, input *CanonicalProductInput) (*entity.CanonicalProduct, error)

	ListSuggestions(ctx context.Context) (*SuggestionQueue, error)
	SetSuggestionStatus(ctx context.Context, id string, status entity.SuggestionStatus) error

	// PromoteSuggestion creates the catalog product and marks the suggestion
	// added-to-catalog in one atomic update.
	PromoteSuggestion(ctx context.Context, id string, input *CanonicalProductInput) (*entity.CanonicalProduct, error)
}
