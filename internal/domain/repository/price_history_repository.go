package repository

import (
	"context"

	"marketsync/internal/domain/entity"
)

// PriceHistoryRepository reads the append-only archival ledger. Entries are
// only ever written through WriteBatch.ArchiveAdvertisement.
type PriceHistoryRepository interface {
	FindAll(ctx context.Context) ([]*entity.PriceHistoryEntry, error)

	// FindByProduct returns the entries whose productName equals name exactly.
	FindByProduct(ctx context.Context, name string) ([]*entity.PriceHistoryEntry, error)
}
