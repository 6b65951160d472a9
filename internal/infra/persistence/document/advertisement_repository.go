package document

import (
	"context"
	"log/slog"

	"marketsync/internal/domain/entity"
	"marketsync/internal/domain/repository"
	"marketsync/internal/infra/persistence/model"
)

// advertisementRepository implements the domain.AdvertisementRepository interface.
type advertisementRepository struct {
	store  repository.DocumentStore
	logger *slog.Logger
}

// NewAdvertisementRepository is the constructor for advertisementRepository.
func NewAdvertisementRepository(store repository.DocumentStore, logger *slog.Logger) repository.AdvertisementRepository {
	return &advertisementRepository{store: store, logger: logger}
}

// FindAll returns every decodable advertisement.
func (repo *advertisementRepository) FindAll(ctx context.Context) ([]*entity.Advertisement, error) {
	docs, err := repo.store.ReadAll(ctx, repository.CollectionAdvertisements)
	if err != nil {
		return nil, unavailable("read advertisements", err)
	}

	return decodeAll(repo.logger, docs, model.DecodeAdvertisement), nil
}

// FindByStore returns the advertisements of storeID.
func (repo *advertisementRepository) FindByStore(ctx context.Context, storeID string) ([]*entity.Advertisement, error) {
	docs, err := repo.store.QueryByChild(ctx, repository.CollectionAdvertisements, "storeId", storeID)
	if err != nil {
		return nil, unavailable("query advertisements by store", err)
	}

	return decodeAll(repo.logger, docs, model.DecodeAdvertisement), nil
}

// FindByID retrieves one advertisement.
func (repo *advertisementRepository) FindByID(ctx context.Context, id string) (*entity.Advertisement, error) {
	raw, ok, err := repo.store.Read(ctx, repository.Path(repository.CollectionAdvertisements, id))
	if err != nil {
		return nil, unavailable("read advertisement", err)
	}
	if !ok {
		return nil, repository.ErrAdvertisementNotFound
	}

	return model.DecodeAdvertisement(id, raw)
}

// Create persists ad under a fresh key.
func (repo *advertisementRepository) Create(ctx context.Context, ad *entity.Advertisement) error {
	key := repo.store.NewKey(repository.CollectionAdvertisements)
	if err := repo.store.Write(ctx, repository.Path(repository.CollectionAdvertisements, key), model.NewAdvertisementDocument(ad)); err != nil {
		return unavailable("create advertisement", err)
	}
	ad.ID = key

	return nil
}
