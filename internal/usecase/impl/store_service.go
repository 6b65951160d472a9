package impl

import (
	"context"
	"log/slog"
	"strings"

	"marketsync/internal/domain/entity"
	domainerrors "marketsync/internal/domain/errors"
	"marketsync/internal/domain/repository"
	"marketsync/internal/errors"
	"marketsync/internal/querycache"
	"marketsync/internal/usecase"
)

type storeService struct {
	storeRepo repository.StoreRepository
	cache     *querycache.Client
	logger    *slog.Logger
}

// NewStoreService creates a new store service instance
func NewStoreService(storeRepo repository.StoreRepository, cache *querycache.Client, logger *slog.Logger) usecase.StoreUsecase {
	return &storeService{
		storeRepo: storeRepo,
		cache:     cache,
		logger:    logger,
	}
}

func (s *storeService) ListStores(ctx context.Context) ([]*entity.Store, error) {
	stores, err := querycache.Fetch(ctx, s.cache, storesKey, s.storeRepo.FindAll)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}

// GetOwnedStore returns the user's store, nil when there is none
func (s *storeService) GetOwnedStore(ctx context.Context, userID string) (*entity.Store, error) {
	return ownedStore(ctx, s.cache, s.storeRepo, userID)
}

// CreateStore registers the user's store
func (s *storeService) CreateStore(ctx context.Context, userID string, input *usecase.StoreInput) (*entity.Store, error) {
	if userID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}
	if err := validateStoreInput(input); err != nil {
		return nil, err
	}

	existing, err := s.storeRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find store by owner")
	}
	if existing != nil {
		return nil, domainerrors.ErrStoreAlreadyExists.WithDetails(existing.ID)
	}

	store := &entity.Store{OwnerID: userID}
	applyStoreInput(store, input)
	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, errors.Wrap(err, "failed to create store")
	}
	s.seed(userID, store)
	s.logger.Info("Store registered", "storeId", store.ID, "ownerId", userID)

	return store, nil
}

// UpdateStore edits a store owned by the user
func (s *storeService) UpdateStore(ctx context.Context, userID, storeID string, input *usecase.StoreInput) (*entity.Store, error) {
	if userID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}
	if err := validateStoreInput(input); err != nil {
		return nil, err
	}

	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}
	if store.OwnerID != userID {
		return nil, domainerrors.ErrStoreOwnership
	}

	updated := *store
	applyStoreInput(&updated, input)
	if err := s.storeRepo.Update(ctx, &updated); err != nil {
		return nil, errors.Wrap(err, "failed to update store")
	}
	s.seed(userID, &updated)

	return &updated, nil
}

// seed invalidates every view built from stores, then seeds the owner's lookup.
func (s *storeService) seed(userID string, store *entity.Store) {
	s.cache.Invalidate(storesKey)
	s.cache.Set(userStoreKey(userID), store)
}

// ownedStore reads the user's store through the cache.
func ownedStore(ctx context.Context, cache *querycache.Client, storeRepo repository.StoreRepository, userID string) (*entity.Store, error) {
	store, err := querycache.Fetch(ctx, cache, userStoreKey(userID),
		func(ctx context.Context) (*entity.Store, error) {
			return storeRepo.FindByOwner(ctx, userID)
		},
		querycache.Enabled(userID != ""),
	)
	if err != nil {
		if errors.Is(err, querycache.ErrQueryDisabled) {
			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, errors.Wrap(err, "failed to find owned store")
	}

	return store, nil
}

func validateStoreInput(input *usecase.StoreInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrInvalidInput.WithDetails("store name is required")
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return domainerrors.ErrInvalidInput.WithDetails("latitude and longitude must be set together")
	}
	if input.Latitude != nil && (*input.Latitude < -90 || *input.Latitude > 90) {
		return domainerrors.ErrInvalidInput.WithDetails("latitude must be between -90 and 90")
	}
	if input.Longitude != nil && (*input.Longitude < -180 || *input.Longitude > 180) {
		return domainerrors.ErrInvalidInput.WithDetails("longitude must be between -180 and 180")
	}

	return nil
}

func applyStoreInput(store *entity.Store, input *usecase.StoreInput) {
	store.Name = strings.TrimSpace(input.Name)
	store.Address = strings.TrimSpace(input.Address)
	store.City = strings.TrimSpace(input.City)
	store.State = strings.TrimSpace(input.State)
	store.ZipCode = strings.TrimSpace(input.ZipCode)
	store.Email = strings.TrimSpace(input.Email)
	store.Phone = strings.TrimSpace(input.Phone)
	store.Category = strings.TrimSpace(input.Category)
	store.Description = strings.TrimSpace(input.Description)
	store.Latitude = input.Latitude
	store.Longitude = input.Longitude
}
