package repository

import (
	"context"

	"marketsync/internal/domain/entity"
	"marketsync/internal/errors"
)

// ErrAdvertisementNotFound is returned when an advertisement id has no document.
var ErrAdvertisementNotFound = errors.New("advertisement not found")

// AdvertisementRepository reads and creates advertisements. Archival goes
// through WriteBatch so the flag never changes without its history entry.
type AdvertisementRepository interface {
	// FindAll returns every advertisement, archived ones included.
	FindAll(ctx context.Context) ([]*entity.Advertisement, error)

	// FindByStore returns the advertisements of one store.
	FindByStore(ctx context.Context, storeID string) ([]*entity.Advertisement, error)

	// FindByID returns ErrAdvertisementNotFound when missing.
	FindByID(ctx context.Context, id string) (*entity.Advertisement, error)

	// Create assigns a fresh id to ad and persists it.
	Create(ctx context.Context, ad *entity.Advertisement) error
}
