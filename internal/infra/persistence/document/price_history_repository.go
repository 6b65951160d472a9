package document

import (
	"context"
	"log/slog"

	"marketsync/internal/domain/entity"
	"marketsync/internal/domain/repository"
	"marketsync/internal/infra/persistence/model"
)

// priceHistoryRepository implements the domain.PriceHistoryRepository interface.
type priceHistoryRepository struct {
	store  repository.DocumentStore
	logger *slog.Logger
}

// NewPriceHistoryRepository is the constructor for priceHistoryRepository.
func NewPriceHistoryRepository(store repository.DocumentStore, logger *slog.Logger) repository.PriceHistoryRepository {
	return &priceHistoryRepository{store: store, logger: logger}
}

func (repo *priceHistoryRepository) FindAll(ctx context.Context) ([]*entity.PriceHistoryEntry, error) {
	docs, err := repo.store.ReadAll(ctx, repository.CollectionPriceHistory)
	if err != nil {
		return nil, unavailable("read price history", err)
	}

	return decodeAll(repo.logger, docs, model.DecodePriceHistoryEntry), nil
}

func (repo *priceHistoryRepository) FindByProduct(ctx context.Context, name string) ([]*entity.PriceHistoryEntry, error) {
	docs, err := repo.store.QueryByChild(ctx, repository.CollectionPriceHistory, "productName", name)
	if err != nil {
		return nil, unavailable("query price history by product", err)
	}

	return decodeAll(repo.logger, docs, model.DecodePriceHistoryEntry), nil
}
