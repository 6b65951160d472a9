package repository

import (
	"context"

	"marketsync/internal/domain/entity"
)

// TransactionManager stages writes across collections and commits them as a
// single atomic multi-path update.
type TransactionManager interface {
	// Execute runs fn against a fresh batch. If fn returns an error nothing is
	// written. Otherwise every staged path is committed in one update; an
	// empty batch commits nothing.
	Execute(ctx context.Context, fn func(batch WriteBatch) error) error
}

// WriteBatch collects the compound writes the domain needs to keep atomic.
type WriteBatch interface {
	// ArchiveAdvertisement stages a price history entry for ad and the
	// archived flag on ad. It returns the key of the staged entry.
	ArchiveAdvertisement(ad *entity.Advertisement, storeName string) string

	// CreateCanonicalProduct stages product under a fresh key and returns it.
	CreateCanonicalProduct(product *entity.CanonicalProduct) string

	// SetSuggestionStatus stages a status change of a suggestion.
	SetSuggestionStatus(id string, status entity.SuggestionStatus)

	// Len returns the number of staged paths.
	Len() int
}
