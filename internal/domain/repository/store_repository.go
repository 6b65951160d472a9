package repository

import (
	"context"

	"marketsync/internal/domain/entity"
	"marketsync/internal/errors"
)

// ErrStoreNotFound is returned when a store id has no document.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines the persistence operations for stores.
type StoreRepository interface {
	// FindAll returns every registered store.
	FindAll(ctx context.Context) ([]*entity.Store, error)

	// FindByID returns ErrStoreNotFound when missing.
	FindByID(ctx context.Context, id string) (*entity.Store, error)

	// FindByOwner returns the first store owned by ownerID, or nil when the
	// user has none.
	FindByOwner(ctx context.Context, ownerID string) (*entity.Store, error)

	// Create assigns a fresh id to store and persists it.
	Create(ctx context.Context, store *entity.Store) error

	// Update replaces an existing store document.
	Update(ctx context.Context, store *entity.Store) error
}
