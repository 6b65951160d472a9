package repository

import (
	"context"

	"marketsync/internal/domain/entity"
	"marketsync/internal/errors"
)

// ErrSuggestionNotFound is returned when a suggestion id has no document.
var ErrSuggestionNotFound = errors.New("suggestion not found")

// CanonicalProductRepository defines the operations on the curated catalog.
type CanonicalProductRepository interface {
	FindAll(ctx context.Context) ([]*entity.CanonicalProduct, error)

	// FindByNormalizedName queries the normalizedName index.
	FindByNormalizedName(ctx context.Context, normalized string) ([]*entity.CanonicalProduct, error)

	// Create assigns a fresh id and derives NormalizedName before writing.
	Create(ctx context.Context, product *entity.CanonicalProduct) error
}

// SuggestionRepository defines the operations on the review queue.
type SuggestionRepository interface {
	FindAll(ctx context.Context) ([]*entity.SuggestedNewProduct, error)

	// FindByID returns ErrSuggestionNotFound when missing.
	FindByID(ctx context.Context, id string) (*entity.SuggestedNewProduct, error)

	// Create assigns a fresh id to suggestion and persists it.
	Create(ctx context.Context, suggestion *entity.SuggestedNewProduct) error

	// UpdateStatus writes the status field of one suggestion.
	UpdateStatus(ctx context.Context, id string, status entity.SuggestionStatus) error
}
