package handler

import (
	"net/http"
	"testing"

	"marketsync/internal/domain/entity"
	domainerrors "marketsync/internal/domain/errors"
	"marketsync/internal/domain/service"
	mockUsecase "marketsync/internal/mocks/usecase"
	"marketsync/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validStoreBody = `{
	"name": "Corner Shop",
	"address": "12 Market Street",
	"city": "Springfield",
	"state": "IL",
	"zipCode": "62701",
	"email": "owner@example.com",
	"phone": "5551234567",
	"category": "Retail",
	"latitude": 39.78,
	"longitude": -89.65
}`

func TestStoreHandler_CreateStore(t *testing.T) {
	owner := &service.Identity{UID: "owner-1"}

	t.Run("registers the store for the caller", func(t *testing.T) {
		storeUC := mockUsecase.NewMockStoreUsecase(t)
		h := NewStoreHandler(StoreHandlerParams{StoreUC: storeUC, Logger: newDiscardLogger()})

		storeUC.EXPECT().
			CreateStore(mock.Anything, "owner-1", mock.MatchedBy(func(in *usecase.StoreInput) bool {
				return in.Name == "Corner Shop" && in.Latitude != nil && *in.Latitude == 39.78
			})).
			Return(&entity.Store{ID: "s1", OwnerID: "owner-1", Name: "Corner Shop"}, nil)

		rec := serve(t, newTestEcho(), http.MethodPost, "/stores", "/stores", validStoreBody, owner, h.CreateStore)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got entity.Store
		decodeData(t, rec, &got)
		assert.Equal(t, "s1", got.ID)
	})

	t.Run("validation failure names the fields", func(t *testing.T) {
		storeUC := mockUsecase.NewMockStoreUsecase(t)
		h := NewStoreHandler(StoreHandlerParams{StoreUC: storeUC, Logger: newDiscardLogger()})

		rec := serve(t, newTestEcho(), http.MethodPost, "/stores", "/stores", `{"name":"X","email":"nope"}`, owner, h.CreateStore)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		info := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", info.Code)
		details, ok := info.Details.(map[string]any)
		require.True(t, ok)
		assert.Contains(t, details, "name")
		assert.Contains(t, details, "email")
	})

	t.Run("second store is a conflict", func(t *testing.T) {
		storeUC := mockUsecase.NewMockStoreUsecase(t)
		h := NewStoreHandler(StoreHandlerParams{StoreUC: storeUC, Logger: newDiscardLogger()})

		storeUC.EXPECT().
			CreateStore(mock.Anything, "owner-1", mock.Anything).
			Return(nil, domainerrors.ErrStoreAlreadyExists.WithDetails("s1"))

		rec := serve(t, newTestEcho(), http.MethodPost, "/stores", "/stores", validStoreBody, owner, h.CreateStore)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestStoreHandler_UpdateStore_Ownership(t *testing.T) {
	storeUC := mockUsecase.NewMockStoreUsecase(t)
	h := NewStoreHandler(StoreHandlerParams{StoreUC: storeUC, Logger: newDiscardLogger()})

	storeUC.EXPECT().
		UpdateStore(mock.Anything, "intruder", "s1", mock.Anything).
		Return(nil, domainerrors.ErrStoreOwnership)

	rec := serve(t, newTestEcho(), http.MethodPut, "/stores/:id", "/stores/s1", validStoreBody,
		&service.Identity{UID: "intruder"}, h.UpdateStore)

	require.Equal(t, http.StatusForbidden, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "STORE_OWNERSHIP_VIOLATION", info.Code)
	assert.Nil(t, info.Details)
}

func TestStoreHandler_GetOwnedStore_None(t *testing.T) {
	storeUC := mockUsecase.NewMockStoreUsecase(t)
	h := NewStoreHandler(StoreHandlerParams{StoreUC: storeUC, Logger: newDiscardLogger()})

	storeUC.EXPECT().GetOwnedStore(mock.Anything, "u1").Return(nil, nil)

	rec := serve(t, newTestEcho(), http.MethodGet, "/stores/mine", "/stores/mine", "", &service.Identity{UID: "u1"}, h.GetOwnedStore)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":null`)
}
