package view

import (
	"testing"
	"time"

	"marketsync/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductNames(t *testing.T) {
	entries := []*entity.PriceHistoryEntry{
		{ProductName: "milk"}, {ProductName: "Bread"}, {ProductName: "milk"}, {ProductName: ""}, {ProductName: "apples"},
	}

	assert.Equal(t, []string{"apples", "Bread", "milk"}, ProductNames(entries))
}

func TestProductHistory(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	entries := []*entity.PriceHistoryEntry{
		{ID: "h3", AdvertisementID: "a3", ProductName: "Milk", Price: 3, ArchivedAt: base.Add(3 * time.Hour)},
		{ID: "h1", AdvertisementID: "a1", ProductName: "Milk", Price: 1, ArchivedAt: base.Add(time.Hour)},
		{ID: "h1-dup", AdvertisementID: "a1", ProductName: "Milk", Price: 1, ArchivedAt: base.Add(time.Hour + time.Second)},
		{ID: "h2", AdvertisementID: "a2", ProductName: "Bread", Price: 2, ArchivedAt: base.Add(2 * time.Hour)},
		{ID: "h0-dup", AdvertisementID: "a0", ProductName: "Milk", Price: 0.5, ArchivedAt: base.Add(30 * time.Minute)},
		{ID: "h0", AdvertisementID: "a0", ProductName: "Milk", Price: 0.5, ArchivedAt: base.Add(20 * time.Minute)},
	}

	got := ProductHistory(entries, "Milk")
	require.Len(t, got, 3)

	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	assert.Equal(t, []string{"h0", "h1", "h3"}, ids)
	assert.Empty(t, ProductHistory(entries, "milk"), "product match is exact")
}
