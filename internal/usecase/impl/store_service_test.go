package impl

import (
	"context"
	"testing"

	"marketsync/internal/domain/entity"
	domainerrors "marketsync/internal/domain/errors"
	"marketsync/internal/querycache"
	"marketsync/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreInput(name string) *usecase.StoreInput {
	lat, lng := 40.4168, -3.7038

	return &usecase.StoreInput{
		Name:      name,
		Address:   "Calle Mayor 1",
		City:      "Madrid",
		State:     "Madrid",
		ZipCode:   "28013",
		Email:     "shop@example.com",
		Phone:     "+34910000000",
		Category:  "Retail",
		Latitude:  &lat,
		Longitude: &lng,
	}
}

func TestStoreService_CreateStore(t *testing.T) {
	ctx := context.Background()
	backend := newMemoryBackend()
	cache := newTestCache()
	svc := NewStoreService(backend.stores, cache, newDiscardLogger())

	owned, err := svc.GetOwnedStore(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, owned)

	listed, err := svc.ListStores(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	store, err := svc.CreateStore(ctx, "u1", newStoreInput(" Corner Shop "))
	require.NoError(t, err)
	assert.NotEmpty(t, store.ID)
	assert.Equal(t, "u1", store.OwnerID)
	assert.Equal(t, "Corner Shop", store.Name)

	assert.Equal(t, querycache.StateInvalidated, cache.Peek(storesKey))
	owned, err = svc.GetOwnedStore(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, owned)
	assert.Equal(t, store.ID, owned.ID)

	listed, err = svc.ListStores(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	_, err = svc.CreateStore(ctx, "u1", newStoreInput("Second Shop"))
	assert.ErrorIs(t, err, domainerrors.ErrStoreAlreadyExists)
}

func TestStoreService_CreateStore_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewStoreService(newMemoryBackend().stores, newTestCache(), newDiscardLogger())

	_, err := svc.CreateStore(ctx, "", newStoreInput("Shop"))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	input := newStoreInput("Shop")
	input.Longitude = nil
	_, err = svc.CreateStore(ctx, "u1", input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	input = newStoreInput("Shop")
	lat := 91.0
	input.Latitude = &lat
	_, err = svc.CreateStore(ctx, "u1", input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = svc.GetOwnedStore(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestStoreService_UpdateStore(t *testing.T) {
	ctx := context.Background()
	backend := newMemoryBackend()
	cache := newTestCache()
	svc := NewStoreService(backend.stores, cache, newDiscardLogger())

	store, err := svc.CreateStore(ctx, "u1", newStoreInput("Corner Shop"))
	require.NoError(t, err)

	input := newStoreInput("Corner Shop Deluxe")
	input.Latitude, input.Longitude = nil, nil
	updated, err := svc.UpdateStore(ctx, "u1", store.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Corner Shop Deluxe", updated.Name)
	assert.Nil(t, updated.Latitude)

	stored, err := backend.stores.FindByID(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, "Corner Shop Deluxe", stored.Name)

	cached, ok := cache.Get(userStoreKey("u1"))
	require.True(t, ok)
	assert.Equal(t, "Corner Shop Deluxe", cached.(*entity.Store).Name)

	_, err = svc.UpdateStore(ctx, "u2", store.ID, input)
	assert.ErrorIs(t, err, domainerrors.ErrStoreOwnership)

	_, err = svc.UpdateStore(ctx, "u1", "missing", input)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}
