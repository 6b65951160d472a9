package impl

import (
	"context"
	"testing"
	"time"

	"marketsync/internal/domain/entity"
	domainerrors "marketsync/internal/domain/errors"
	"marketsync/internal/querycache"
	"marketsync/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListingInput() *usecase.CreateAdvertisementInput {
	stock := 3

	return &usecase.CreateAdvertisementInput{
		Name:         "Espresso Machine",
		Price:        129.9,
		Category:     "home-kitchen",
		Stock:        &stock,
		ValidityDays: 3,
	}
}

func TestListingService_CreateAdvertisement(t *testing.T) {
	ctx := context.Background()
	backend := newMemoryBackend()
	store := &entity.Store{OwnerID: "u1", Name: "Corner Shop"}
	require.NoError(t, backend.stores.Create(ctx, store))

	cache := newTestCache()
	svc := NewListingService(backend.ads, backend.stores, cache, newDiscardLogger())
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.(*listingService).now = func() time.Time { return created }

	own, err := svc.ListOwnAdvertisements(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, own)

	ad, err := svc.CreateAdvertisement(ctx, "u1", newListingInput())
	require.NoError(t, err)
	assert.NotEmpty(t, ad.ID)
	assert.Equal(t, store.ID, ad.StoreID)
	assert.Equal(t, "Home & Kitchen", ad.Category)
	assert.Equal(t, created, ad.CreatedAt)
	assert.Equal(t, created.Add(72*time.Hour), ad.ValidUntil)
	assert.False(t, ad.Archived)
	assert.Equal(t, querycache.StateMissing, cache.Peek(advertisementsKey))

	own, err = svc.ListOwnAdvertisements(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, ad.ID, own[0].ID)
}

func TestListingService_CreateAdvertisement_Rejections(t *testing.T) {
	ctx := context.Background()
	backend := newMemoryBackend()
	require.NoError(t, backend.stores.Create(ctx, &entity.Store{OwnerID: "u1", Name: "Corner Shop"}))
	svc := NewListingService(backend.ads, backend.stores, newTestCache(), newDiscardLogger())

	_, err := svc.CreateAdvertisement(ctx, "u2", newListingInput())
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)

	_, err = svc.CreateAdvertisement(ctx, "", newListingInput())
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	tests := []struct {
		name   string
		modify func(in *usecase.CreateAdvertisementInput)
		want   error
	}{
		{name: "zero price", modify: func(in *usecase.CreateAdvertisementInput) { in.Price = 0 }, want: domainerrors.ErrInvalidInput},
		{name: "negative stock", modify: func(in *usecase.CreateAdvertisementInput) { s := -1; in.Stock = &s }, want: domainerrors.ErrInvalidInput},
		{name: "validity too long", modify: func(in *usecase.CreateAdvertisementInput) { in.ValidityDays = 8 }, want: domainerrors.ErrInvalidInput},
		{name: "validity zero", modify: func(in *usecase.CreateAdvertisementInput) { in.ValidityDays = 0 }, want: domainerrors.ErrInvalidInput},
		{name: "blank name", modify: func(in *usecase.CreateAdvertisementInput) { in.Name = "  " }, want: domainerrors.ErrInvalidInput},
		{name: "unknown category", modify: func(in *usecase.CreateAdvertisementInput) { in.Category = "toys" }, want: domainerrors.ErrInvalidCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := newListingInput()
			tt.modify(input)
			_, err := svc.CreateAdvertisement(ctx, "u1", input)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	ads, err := backend.ads.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, ads)
}
