package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"marketsync/internal/domain/entity"
	domainerrors "marketsync/internal/domain/errors"
	"marketsync/internal/domain/repository"
	"marketsync/internal/errors"
	"marketsync/internal/querycache"
	"marketsync/internal/usecase"
	"marketsync/internal/util"
)

type listingService struct {
	adRepo    repository.AdvertisementRepository
	storeRepo repository.StoreRepository
	cache     *querycache.Client
	logger    *slog.Logger
	now       func() time.Time
}

// NewListingService creates a new listing service instance
func NewListingService(
	adRepo repository.AdvertisementRepository,
	storeRepo repository.StoreRepository,
	cache *querycache.Client,
	logger *slog.Logger,
) usecase.ListingUsecase {
	return &listingService{
		adRepo:    adRepo,
		storeRepo: storeRepo,
		cache:     cache,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateAdvertisement publishes a listing valid for input.ValidityDays days
func (s *listingService) CreateAdvertisement(ctx context.Context, userID string, input *usecase.CreateAdvertisementInput) (*entity.Advertisement, error) {
	store, err := ownedStore(ctx, s.cache, s.storeRepo, userID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domainerrors.ErrStoreNotFound.WithDetails("register a store before listing products")
	}

	name := strings.TrimSpace(input.Name)
	switch {
	case name == "":
		return nil, domainerrors.ErrInvalidInput.WithDetails("product name is required")
	case input.Price <= 0:
		return nil, domainerrors.ErrInvalidInput.WithDetails("price must be greater than zero")
	case input.Stock != nil && *input.Stock < 0:
		return nil, domainerrors.ErrInvalidInput.WithDetails("stock must not be negative")
	case input.ValidityDays < usecase.MinValidityDays || input.ValidityDays > usecase.MaxValidityDays:
		return nil, domainerrors.ErrInvalidInput.WithDetails("validity must be between 1 and 7 days")
	}
	category, ok := entity.CategoryName(input.Category)
	if !ok {
		return nil, domainerrors.ErrInvalidCategory.WithDetails(input.Category)
	}

	createdAt := s.now()
	ad := &entity.Advertisement{
		StoreID:     store.ID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Category:    category,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		Stock:       input.Stock,
		CreatedAt:   createdAt,
		ValidUntil:  createdAt.Add(util.Days(input.ValidityDays)),
	}
	if err := s.adRepo.Create(ctx, ad); err != nil {
		return nil, errors.Wrap(err, "failed to create advertisement")
	}
	s.cache.Invalidate(advertisementsKey)
	s.logger.Info("Advertisement published",
		"advertisementId", ad.ID,
		"storeId", store.ID,
		"validUntil", ad.ValidUntil,
	)

	return ad, nil
}

// ListOwnAdvertisements returns the listings of the user's store, archived included
func (s *listingService) ListOwnAdvertisements(ctx context.Context, userID string) ([]*entity.Advertisement, error) {
	store, err := ownedStore(ctx, s.cache, s.storeRepo, userID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return []*entity.Advertisement{}, nil
	}

	ads, err := s.adRepo.FindByStore(ctx, store.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find advertisements by store")
	}

	return ads, nil
}
