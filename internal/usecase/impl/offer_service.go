package impl

import (
	"context"
	"log/slog"
	"sync/atomic"

	"marketsync/internal/domain/entity"
	"marketsync/internal/domain/repository"
	"marketsync/internal/domain/view"
	"marketsync/internal/errors"
	"marketsync/internal/querycache"
	"marketsync/internal/usecase"
)

type offerService struct {
	adRepo    repository.AdvertisementRepository
	storeRepo repository.StoreRepository
	archival  usecase.ArchivalUsecase
	location  usecase.LocationUsecase
	cache     *querycache.Client
	logger    *slog.Logger

	state atomic.Value // usecase.ActiveViewState of the running materialization
}

// NewOfferService creates the storefront view service.
func NewOfferService(
	adRepo repository.AdvertisementRepository,
	storeRepo repository.StoreRepository,
	archival usecase.ArchivalUsecase,
	location usecase.LocationUsecase,
	cache *querycache.Client,
	logger *slog.Logger,
) usecase.OfferUsecase {
	s := &offerService{
		adRepo:    adRepo,
		storeRepo: storeRepo,
		archival:  archival,
		location:  location,
		cache:     cache,
		logger:    logger,
	}
	s.state.Store(usecase.ViewIdle)

	return s
}

// ListOffers builds, filters and sorts the offers of the active advertisements.
func (s *offerService) ListOffers(ctx context.Context, input *usecase.ListOffersInput) (*usecase.OfferList, error) {
	ads, err := s.ActiveAdvertisements(ctx)
	if err != nil {
		return nil, err
	}
	stores, err := s.stores(ctx)
	if err != nil {
		return nil, err
	}

	origin := s.location.ResolveOrigin(ctx, input.UserID, input.Position)
	offers := view.BuildOffers(ads, entity.StoresByID(stores), origin)
	offers = view.OfferQuery{
		Category: input.Category,
		Search:   input.Search,
		Sort:     view.ParseSortKey(input.Sort),
	}.Apply(offers)

	return &usecase.OfferList{
		Offers:     offers,
		Origin:     origin,
		Categories: entity.Categories,
	}, nil
}

// ActiveAdvertisements materializes the active view. The view query only
// resolves after reconciliation ran over the raw advertisements and stores it
// was derived from.
func (s *offerService) ActiveAdvertisements(ctx context.Context) ([]*entity.Advertisement, error) {
	return querycache.Fetch(ctx, s.cache, activeKey, s.materialize)
}

// ViewState reports where the active view is in its materialization.
func (s *offerService) ViewState() usecase.ActiveViewState {
	switch s.cache.Peek(activeKey) {
	case querycache.StateFresh, querycache.StateStale:
		return usecase.ViewMaterialized
	case querycache.StateFetching:
		return s.state.Load().(usecase.ActiveViewState)
	default:
		return usecase.ViewIdle
	}
}

func (s *offerService) materialize(ctx context.Context) ([]*entity.Advertisement, error) {
	s.state.Store(usecase.ViewIdle)

	ads, err := querycache.Fetch(ctx, s.cache, advertisementsKey, s.adRepo.FindAll)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch advertisements")
	}
	stores, err := s.stores(ctx)
	if err != nil {
		return nil, err
	}
	s.state.Store(usecase.ViewRawFetched)

	s.state.Store(usecase.ViewReconciling)
	result, err := s.archival.Reconcile(ctx, ads, entity.StoreNames(stores), usecase.TriggerView)
	if err != nil {
		s.state.Store(usecase.ViewRawFetched)

		return nil, err
	}
	s.state.Store(usecase.ViewMaterialized)
	s.logger.Debug("Active view materialized", "active", result.ActiveCount, "archived", len(result.Archived))

	return result.Active, nil
}

func (s *offerService) stores(ctx context.Context) ([]*entity.Store, error) {
	stores, err := querycache.Fetch(ctx, s.cache, storesKey, s.storeRepo.FindAll)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch stores")
	}

	return stores, nil
}
