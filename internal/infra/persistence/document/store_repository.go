package document

import (
	"context"
	"log/slog"

	"marketsync/internal/domain/entity"
	"marketsync/internal/domain/repository"
	"marketsync/internal/infra/persistence/model"
)

// storeRepository implements the domain.StoreRepository interface.
type storeRepository struct {
	store  repository.DocumentStore
	logger *slog.Logger
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(store repository.DocumentStore, logger *slog.Logger) repository.StoreRepository {
	return &storeRepository{store: store, logger: logger}
}

func (repo *storeRepository) FindAll(ctx context.Context) ([]*entity.Store, error) {
	docs, err := repo.store.ReadAll(ctx, repository.CollectionStores)
	if err != nil {
		return nil, unavailable("read stores", err)
	}

	return decodeAll(repo.logger, docs, model.DecodeStore), nil
}

func (repo *storeRepository) FindByID(ctx context.Context, id string) (*entity.Store, error) {
	raw, ok, err := repo.store.Read(ctx, repository.Path(repository.CollectionStores, id))
	if err != nil {
		return nil, unavailable("read store", err)
	}
	if !ok {
		return nil, repository.ErrStoreNotFound
	}

	return model.DecodeStore(id, raw)
}

// FindByOwner returns the first store of ownerID in key order, nil if none.
func (repo *storeRepository) FindByOwner(ctx context.Context, ownerID string) (*entity.Store, error) {
	docs, err := repo.store.QueryByChild(ctx, repository.CollectionStores, "ownerId", ownerID)
	if err != nil {
		return nil, unavailable("query stores by owner", err)
	}

	stores := decodeAll(repo.logger, docs, model.DecodeStore)
	if len(stores) == 0 {
		return nil, nil
	}
	if len(stores) > 1 {
		repo.logger.Warn("Owner has more than one store, using the first", "ownerID", ownerID, "count", len(stores))
	}

	return stores[0], nil
}

func (repo *storeRepository) Create(ctx context.Context, s *entity.Store) error {
	key := repo.store.NewKey(repository.CollectionStores)
	if err := repo.store.Write(ctx, repository.Path(repository.CollectionStores, key), model.NewStoreDocument(s)); err != nil {
		return unavailable("create store", err)
	}
	s.ID = key

	return nil
}

func (repo *storeRepository) Update(ctx context.Context, s *entity.Store) error {
	if err := repo.store.Write(ctx, repository.Path(repository.CollectionStores, s.ID), model.NewStoreDocument(s)); err != nil {
		return unavailable("update store", err)
	}

	return nil
}
