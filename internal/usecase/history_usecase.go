package usecase

import (
	"context"

	"marketsync/internal/domain/entity"
)

// ProductHistory is the price series of one product.
type ProductHistory struct {
	ProductName string                      `json:"productName"`
	Entries     []*entity.PriceHistoryEntry `json:"entries"`
}

// HistoryUsecase defines price monitoring reads
type HistoryUsecase interface {
	// ProductNames returns the distinct archived product names.
	ProductNames(ctx context.Context) ([]string, error)

	// ProductHistory returns one product's entries ordered by archival time.
	ProductHistory(ctx context.Context, productName string) (*ProductHistory, error)
}
