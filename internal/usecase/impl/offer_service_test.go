package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketsync/internal/domain/entity"
	"marketsync/internal/domain/service"
	"marketsync/internal/infra/guard"
	mockRepo "marketsync/internal/mocks/repository"
	mockService "marketsync/internal/mocks/service"
	mockUsecase "marketsync/internal/mocks/usecase"
	"marketsync/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestOfferService_ListOffers_ReconcilesBeforeMaterializing(t *testing.T) {
	ctx := context.Background()
	backend := newMemoryBackend()
	expired, active := seedMarket(t, backend, time.Now())

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishMarketEvent(mock.Anything, mock.Anything).Return(nil).Once()

	cache := newTestCache()
	archival := NewArchivalService(backend.ads, backend.stores, backend.tx, guard.NewLocalGuard(), publisher, cache, nil, newTestConfig(), newDiscardLogger())
	location := NewLocationService(backend.settings, cache, newDiscardLogger())
	svc := NewOfferService(backend.ads, backend.stores, archival, location, cache, newDiscardLogger())

	assert.Equal(t, usecase.ViewIdle, svc.ViewState())

	list, err := svc.ListOffers(ctx, &usecase.ListOffersInput{})
	require.NoError(t, err)
	require.Len(t, list.Offers, 1)
	assert.Equal(t, active.ID, list.Offers[0].ID)
	assert.Equal(t, "Corner Shop", list.Offers[0].StoreName)
	assert.Nil(t, list.Offers[0].Distance)
	assert.Equal(t, entity.OriginUnknown, list.Origin.Source)
	assert.Equal(t, entity.Categories, list.Categories)
	assert.Equal(t, usecase.ViewMaterialized, svc.ViewState())

	stored, err := backend.ads.FindByID(ctx, expired.ID)
	require.NoError(t, err)
	assert.True(t, stored.Archived)

	again, err := svc.ListOffers(ctx, &usecase.ListOffersInput{})
	require.NoError(t, err)
	assert.Len(t, again.Offers, 1)
}

func TestOfferService_ListOffers_FiltersAndSortsByDistance(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	stores := []*entity.Store{
		{ID: "near", Name: "Near Shop", Latitude: floatPtr(40.0), Longitude: floatPtr(-3.0)},
		{ID: "far", Name: "Far Shop", Latitude: floatPtr(41.0), Longitude: floatPtr(-3.0)},
		{ID: "nowhere", Name: "Nowhere Shop"},
	}
	ads := []*entity.Advertisement{
		{ID: "a-far", StoreID: "far", Name: "Phone", Price: 100, Category: "Electronics", ValidUntil: now.Add(time.Hour)},
		{ID: "a-nowhere", StoreID: "nowhere", Name: "Phone Case", Price: 5, Category: "Electronics", ValidUntil: now.Add(time.Hour)},
		{ID: "a-near", StoreID: "near", Name: "Phone", Price: 120, Category: "Electronics", ValidUntil: now.Add(time.Hour)},
		{ID: "a-book", StoreID: "near", Name: "Novel", Price: 12, Category: "Books", ValidUntil: now.Add(time.Hour)},
	}

	storeRepo := mockRepo.NewMockStoreRepository(t)
	storeRepo.EXPECT().FindAll(mock.Anything).Return(stores, nil).Once()
	archival := mockUsecase.NewMockArchivalUsecase(t)
	archival.EXPECT().Reconcile(mock.Anything, ads, mock.Anything, usecase.TriggerView).
		Return(&usecase.ReconcileResult{Active: ads, ActiveCount: len(ads)}, nil).
		Once()
	adRepo := mockRepo.NewMockAdvertisementRepository(t)
	adRepo.EXPECT().FindAll(mock.Anything).Return(ads, nil).Once()

	position := service.ReportedPosition{Latitude: floatPtr(40.0), Longitude: floatPtr(-3.0)}
	location := mockUsecase.NewMockLocationUsecase(t)
	location.EXPECT().ResolveOrigin(mock.Anything, "", position).
		Return(entity.Origin{Point: orb.Point{-3.0, 40.0}, Source: entity.OriginLive})

	svc := NewOfferService(adRepo, storeRepo, archival, location, newTestCache(), newDiscardLogger())

	list, err := svc.ListOffers(ctx, &usecase.ListOffersInput{Category: "electronics", Search: "phone", Sort: "distance", Position: position})
	require.NoError(t, err)

	ids := make([]string, 0, len(list.Offers))
	for _, o := range list.Offers {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []string{"a-near", "a-far", "a-nowhere"}, ids)
	require.NotNil(t, list.Offers[0].Distance)
	assert.InDelta(t, 0.0, *list.Offers[0].Distance, 1e-9)
	assert.Nil(t, list.Offers[2].Distance)
}

func TestOfferService_ActiveAdvertisements_CoalescesConcurrentViews(t *testing.T) {
	now := time.Now()
	ads := []*entity.Advertisement{{ID: "a1", StoreID: "s1", Name: "Milk", Price: 1, ValidUntil: now.Add(time.Hour)}}

	release := make(chan struct{})
	adRepo := mockRepo.NewMockAdvertisementRepository(t)
	adRepo.EXPECT().FindAll(mock.Anything).RunAndReturn(func(context.Context) ([]*entity.Advertisement, error) {
		<-release

		return ads, nil
	}).Once()
	storeRepo := mockRepo.NewMockStoreRepository(t)
	storeRepo.EXPECT().FindAll(mock.Anything).Return([]*entity.Store{{ID: "s1", Name: "Shop"}}, nil).Once()
	archival := mockUsecase.NewMockArchivalUsecase(t)
	archival.EXPECT().Reconcile(mock.Anything, ads, map[string]string{"s1": "Shop"}, usecase.TriggerView).
		Return(&usecase.ReconcileResult{Active: ads, ActiveCount: 1}, nil).
		Once()

	svc := NewOfferService(adRepo, storeRepo, archival, mockUsecase.NewMockLocationUsecase(t), newTestCache(), newDiscardLogger())

	const callers = 8
	var wg sync.WaitGroup
	results := make([][]*entity.Advertisement, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			active, err := svc.ActiveAdvertisements(context.Background())
			assert.NoError(t, err)
			results[i] = active
		}()
	}

	close(release)
	wg.Wait()

	for _, active := range results {
		assert.Equal(t, ads, active)
	}
	assert.Equal(t, usecase.ViewMaterialized, svc.ViewState())
}
