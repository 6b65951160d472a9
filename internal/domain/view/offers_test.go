package view

import (
	"testing"

	"marketsync/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestBuildOffers(t *testing.T) {
	stores := map[string]*entity.Store{
		"s1": {ID: "s1", Name: "Tech World", Latitude: floatPtr(0), Longitude: floatPtr(1)},
		"s2": {ID: "s2", Name: "Green Grocer"},
	}
	ads := []*entity.Advertisement{
		{ID: "a1", StoreID: "s1", Name: "Wireless Noise Cancelling Headphones", Price: 199.99, Category: "Electronics"},
		{ID: "a2", StoreID: "s2", Name: "Milk", Price: 2.5, Category: "Groceries", ImageURL: "https://img/milk.png", DataAIHint: "dairy milk"},
		{ID: "a3", StoreID: "gone", Name: "Book", Price: 10, Category: "Books"},
	}

	t.Run("known origin", func(t *testing.T) {
		origin := entity.Origin{Point: orb.Point{0, 0}, Source: entity.OriginLive}
		offers := BuildOffers(ads, stores, origin)
		require.Len(t, offers, 3)

		assert.Equal(t, "Tech World", offers[0].StoreName)
		require.NotNil(t, offers[0].Distance)
		assert.InDelta(t, 111.19, *offers[0].Distance, 0.5)
		assert.Equal(t, PlaceholderImageURL, offers[0].ProductImage)
		assert.Equal(t, "wireless noise", offers[0].DataAIHint)

		assert.Nil(t, offers[1].Distance, "store without coordinates has no distance")
		assert.Equal(t, "https://img/milk.png", offers[1].ProductImage)
		assert.Equal(t, "dairy milk", offers[1].DataAIHint)

		assert.Equal(t, UnknownStoreName, offers[2].StoreName)
		assert.Nil(t, offers[2].Distance)
	})

	t.Run("unknown origin", func(t *testing.T) {
		offers := BuildOffers(ads, stores, entity.Origin{Source: entity.OriginUnknown, Reason: "permission-denied"})
		for _, o := range offers {
			assert.Nil(t, o.Distance)
		}
	})
}

func TestImageHint(t *testing.T) {
	assert.Equal(t, "milk", ImageHint("Milk"))
	assert.Equal(t, "iphone 15", ImageHint("  iPhone 15 Pro "))
	assert.Equal(t, "", ImageHint(""))
}
