package memory

import (
	"context"
	"testing"
	"time"

	"marketsync/internal/domain/repository"
	"marketsync/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_WriteReadAll(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	all, err := s.ReadAll(ctx, "stores")
	require.NoError(t, err)
	assert.Empty(t, all, "missing collection is empty, not an error")

	require.NoError(t, s.Write(ctx, "stores/s1", map[string]any{"name": "Tech World", "ownerId": "u1"}))
	require.NoError(t, s.Write(ctx, "stores/s2", map[string]any{"name": "Green Grocer", "ownerId": "u2"}))

	all, err = s.ReadAll(ctx, "stores")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.JSONEq(t, `{"name":"Tech World","ownerId":"u1"}`, string(all["s1"]))

	raw, ok, err := s.Read(ctx, "stores/s2/name")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `"Green Grocer"`, string(raw))

	_, ok, err = s.Read(ctx, "stores/s3")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_QueryByChild(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.Update(ctx, map[string]any{
		"canonicalProducts/c1": map[string]any{"name": "Milk", "normalizedName": "milk"},
		"canonicalProducts/c2": map[string]any{"name": "Bread", "normalizedName": "bread"},
		"advertisements/a1":    map[string]any{"price": 10},
	}))

	got, err := s.QueryByChild(ctx, "canonicalProducts", "normalizedName", "milk")
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Contains(t, got, "c1")

	got, err = s.QueryByChild(ctx, "advertisements", "price", 10)
	require.NoError(t, err)
	assert.Contains(t, got, "a1", "numbers compare by value")
}

func TestStore_UpdateResolvesServerTimestamp(t *testing.T) {
	ctx := context.Background()
	now := time.UnixMilli(1767225600000)
	s := NewStore(WithClock(func() time.Time { return now }))

	require.NoError(t, s.Update(ctx, map[string]any{
		"priceHistory/h1":            map[string]any{"productName": "X", "archivedAt": repository.ServerTimestamp},
		"advertisements/a1/archived": true,
	}))

	raw, ok, err := s.Read(ctx, "priceHistory/h1/archivedAt")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1767225600000", string(raw))
}

func TestStore_UpdateIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	err := s.Update(ctx, map[string]any{
		"priceHistory/h1":            map[string]any{"productName": "X"},
		"advertisements/a1/archived": true,
		"advertisements//bad":        true,
	})
	require.ErrorIs(t, err, ErrInvalidPath)

	all, err := s.ReadAll(ctx, "priceHistory")
	require.NoError(t, err)
	assert.Empty(t, all)
	_, ok, err := s.Read(ctx, "advertisements/a1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_FaultInjection(t *testing.T) {
	ctx := context.Background()
	unavailable := errors.New("connection refused")
	s := NewStore(WithFaults(func(op string) error {
		if op == "update" {
			return unavailable
		}

		return nil
	}))

	assert.ErrorIs(t, s.Write(ctx, "stores/s1", map[string]any{"name": "x"}), unavailable)
	all, err := s.ReadAll(ctx, "stores")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStore_WriteNilDeletes(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.Write(ctx, "userSettings/u1/preferredLocation", map[string]any{"address": "Main St 1"}))
	require.NoError(t, s.Write(ctx, "userSettings/u1/preferredLocation", nil))

	all, err := s.ReadAll(ctx, "userSettings")
	require.NoError(t, err)
	assert.Empty(t, all, "empty parents are pruned")
}

func TestStore_NewKeyIsTimeOrdered(t *testing.T) {
	s := NewStore()
	a := s.NewKey("priceHistory")
	time.Sleep(2 * time.Millisecond)
	b := s.NewKey("priceHistory")

	assert.NotEqual(t, a, b)
	assert.Less(t, a, b)
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStore().ReadAll(ctx, "stores")
	assert.ErrorIs(t, err, context.Canceled)
}
