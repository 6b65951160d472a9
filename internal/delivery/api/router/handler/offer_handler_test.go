package handler

import (
	"context"
	"net/http"
	"testing"

	"marketsync/internal/domain/entity"
	"marketsync/internal/domain/service"
	mockUsecase "marketsync/internal/mocks/usecase"
	"marketsync/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOfferHandler_ListOffers(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		identity   *service.Identity
		wantStatus int
		wantPoint  *orb.Point
		wantGeoErr error
		wantUserID string
	}{
		{
			name:       "coordinates are relayed as the live position",
			target:     "/offers?lat=25.03&lng=121.56&sort=distance&category=Books&search=go",
			wantStatus: http.StatusOK,
			wantPoint:  &orb.Point{121.56, 25.03},
		},
		{
			name:       "geolocation failure is relayed",
			target:     "/offers?geoError=permission-denied",
			identity:   &service.Identity{UID: "u1"},
			wantStatus: http.StatusOK,
			wantGeoErr: service.ErrGeoPermissionDenied,
			wantUserID: "u1",
		},
		{
			name:       "no position means unsupported",
			target:     "/offers",
			wantStatus: http.StatusOK,
			wantGeoErr: service.ErrGeoUnsupported,
		},
		{
			name:       "latitude out of range",
			target:     "/offers?lat=95&lng=10",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "latitude not a number",
			target:     "/offers?lat=north&lng=10",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offerUC := mockUsecase.NewMockOfferUsecase(t)
			h := NewOfferHandler(OfferHandlerParams{OfferUC: offerUC, Logger: newDiscardLogger()})

			if tt.wantStatus == http.StatusOK {
				offerUC.EXPECT().
					ListOffers(mock.Anything, mock.AnythingOfType("*usecase.ListOffersInput")).
					RunAndReturn(func(ctx context.Context, input *usecase.ListOffersInput) (*usecase.OfferList, error) {
						assert.Equal(t, tt.wantUserID, input.UserID)
						point, err := input.Position.CurrentPosition(ctx)
						if tt.wantPoint != nil {
							require.NoError(t, err)
							assert.InDelta(t, tt.wantPoint.Lon(), point.Lon(), 1e-9)
							assert.InDelta(t, tt.wantPoint.Lat(), point.Lat(), 1e-9)
						} else {
							assert.ErrorIs(t, err, tt.wantGeoErr)
						}

						return &usecase.OfferList{
							Offers: []*entity.Offer{},
							Origin: entity.Origin{Source: entity.OriginUnknown},
						}, nil
					})
			}

			rec := serve(t, newTestEcho(), http.MethodGet, "/offers", tt.target, "", tt.identity, h.ListOffers)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Code)
			}
		})
	}
}

func TestOfferHandler_ListOffers_PassesFilters(t *testing.T) {
	offerUC := mockUsecase.NewMockOfferUsecase(t)
	h := NewOfferHandler(OfferHandlerParams{OfferUC: offerUC, Logger: newDiscardLogger()})

	offerUC.EXPECT().
		ListOffers(mock.Anything, mock.MatchedBy(func(input *usecase.ListOffersInput) bool {
			return input.Category == "Books" && input.Search == "go" && input.Sort == "price"
		})).
		Return(&usecase.OfferList{Offers: []*entity.Offer{}}, nil)

	rec := serve(t, newTestEcho(), http.MethodGet, "/offers", "/offers?category=Books&search=go&sort=price", "", nil, h.ListOffers)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOfferHandler_ViewState(t *testing.T) {
	offerUC := mockUsecase.NewMockOfferUsecase(t)
	h := NewOfferHandler(OfferHandlerParams{OfferUC: offerUC, Logger: newDiscardLogger()})
	offerUC.EXPECT().ViewState().Return(usecase.ViewMaterialized)

	rec := serve(t, newTestEcho(), http.MethodGet, "/offers/state", "/offers/state", "", nil, h.ViewState)

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]string
	decodeData(t, rec, &got)
	assert.Equal(t, "active-materialized", got["state"])
}
