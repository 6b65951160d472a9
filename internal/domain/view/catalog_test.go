package view

import (
	"testing"

	"marketsync/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchCatalog(t *testing.T) {
	catalog := []*entity.CanonicalProduct{
		{ID: "c1", Name: "Milk", NormalizedName: "milk", Category: "Groceries"},
		{ID: "c2", Name: "iPhone 15 Pro", Category: "Electronics"},
	}

	p, ok := MatchCatalog("MILK", catalog)
	require.True(t, ok)
	assert.Equal(t, "Groceries", p.Category)

	p, ok = MatchCatalog("  iphone 15 pro", catalog)
	require.True(t, ok, "legacy entries without normalizedName still match")
	assert.Equal(t, "c2", p.ID)

	_, ok = MatchCatalog("Widget123", catalog)
	assert.False(t, ok)

	_, ok = MatchCatalog("   ", catalog)
	assert.False(t, ok)

	_, ok = MatchCatalog("milks", catalog)
	assert.False(t, ok, "no fuzzy matching")
}

func TestFilterRelated(t *testing.T) {
	ai := []string{"a", "b", "c"}

	assert.Equal(t, []string{"b"}, FilterRelated(ai, []*entity.CanonicalProduct{{Name: "b", NormalizedName: "b"}}))
	assert.Equal(t, ai, FilterRelated(ai, []*entity.CanonicalProduct{{Name: "z", NormalizedName: "z"}}))
	assert.Equal(t, ai, FilterRelated(ai, nil))
	assert.Equal(t, []string{" B "}, FilterRelated([]string{"a", " B "}, []*entity.CanonicalProduct{{Name: "b"}}))
	assert.Empty(t, FilterRelated(nil, []*entity.CanonicalProduct{{Name: "b"}}))
}
