package document

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"marketsync/internal/domain/entity"
	domainerrors "marketsync/internal/domain/errors"
	"marketsync/internal/domain/repository"
	"marketsync/internal/errors"
	"marketsync/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAdvertisementRepository_SkipsMalformedDocuments(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Update(ctx, map[string]any{
		"advertisements/a1": map[string]any{"storeId": "s1", "name": "Milk", "price": 2.5, "validUntil": 1767830400000},
		"advertisements/a2": map[string]any{"storeId": "s1", "name": "Broken", "price": -1, "validUntil": 1},
		"advertisements/a3": "not a document",
	}))
	repo := NewAdvertisementRepository(store, discardLogger())

	ads, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "a1", ads[0].ID)

	_, err = repo.FindByID(ctx, "a2")
	var de *domainerrors.DecodeError
	assert.True(t, errors.As(err, &de))

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrAdvertisementNotFound)
}

func TestAdvertisementRepository_CreateAndFindByStore(t *testing.T) {
	ctx := context.Background()
	repo := NewAdvertisementRepository(memory.NewStore(), discardLogger())
	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	ad := &entity.Advertisement{StoreID: "s1", Name: "Pan", Price: 35, Category: "Home & Kitchen", CreatedAt: created, ValidUntil: created.Add(72 * time.Hour)}
	require.NoError(t, repo.Create(ctx, ad))
	require.NotEmpty(t, ad.ID)
	require.NoError(t, repo.Create(ctx, &entity.Advertisement{StoreID: "s2", Name: "Book", Price: 9, ValidUntil: created}))

	ads, err := repo.FindByStore(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, ad.ID, ads[0].ID)
	assert.Equal(t, created.Add(72*time.Hour), ads[0].ValidUntil)
}

func TestRepositories_WrapStoreFailures(t *testing.T) {
	ctx := context.Background()
	down := errors.New("network unreachable")
	store := memory.NewStore(memory.WithFaults(func(string) error { return down }))

	_, err := NewStoreRepository(store, discardLogger()).FindAll(ctx)

	var unavailableErr *domainerrors.StoreUnavailableError
	require.True(t, errors.As(err, &unavailableErr))
	assert.ErrorIs(t, err, down)
	assert.True(t, unavailableErr.Retryable())
}

func TestStoreRepository_FindByOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreRepository(memory.NewStore(), discardLogger())

	s, err := repo.FindByOwner(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, s, "no store is not an error")

	first := &entity.Store{OwnerID: "u1", Name: "First"}
	require.NoError(t, repo.Create(ctx, first))
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, repo.Create(ctx, &entity.Store{OwnerID: "u1", Name: "Second"}))

	s, err = repo.FindByOwner(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, first.ID, s.ID, "first match wins")

	first.Name = "Renamed"
	require.NoError(t, repo.Update(ctx, first))
	got, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
}

func TestTransactionManager_CommitsAtomically(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	tm := NewTransactionManager(store)
	ad := &entity.Advertisement{ID: "a1", StoreID: "s1", Name: "X", Price: 10, ValidUntil: time.UnixMilli(1000).UTC()}

	var historyID string
	err := tm.Execute(ctx, func(batch repository.WriteBatch) error {
		historyID = batch.ArchiveAdvertisement(ad, "Tech World")
		assert.Equal(t, 2, batch.Len())

		return nil
	})
	require.NoError(t, err)

	history, err := NewPriceHistoryRepository(store, discardLogger()).FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, historyID, history[0].ID)
	assert.Equal(t, "a1", history[0].AdvertisementID)
	assert.False(t, history[0].ArchivedAt.IsZero(), "server timestamp resolved")

	raw, ok, err := store.Read(ctx, "advertisements/a1/archived")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "true", string(raw))
}

func TestTransactionManager_FailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	tm := NewTransactionManager(store)
	abort := errors.New("abort")

	err := tm.Execute(ctx, func(batch repository.WriteBatch) error {
		batch.CreateCanonicalProduct(&entity.CanonicalProduct{Name: "Milk"})
		batch.SetSuggestionStatus("p1", entity.StatusAddedToCatalog)

		return abort
	})
	require.ErrorIs(t, err, abort)

	all, err := store.ReadAll(ctx, repository.CollectionCanonicalProducts)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.NoError(t, tm.Execute(ctx, func(repository.WriteBatch) error { return nil }), "empty batch commits nothing")
}

func TestUserSettingsRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserSettingsRepository(memory.NewStore())

	loc, err := repo.FindPreferredLocation(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, loc)

	require.NoError(t, repo.SavePreferredLocation(ctx, "u1", &entity.PreferredLocation{Address: "Main St 1", Latitude: 0, Longitude: -46.6}))
	loc, err = repo.FindPreferredLocation(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, -46.6, loc.Longitude)
	assert.Zero(t, loc.Latitude)
}

func TestCatalogRepositories(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	products := NewCanonicalProductRepository(store, discardLogger())
	suggestions := NewSuggestionRepository(store, discardLogger())

	p := &entity.CanonicalProduct{Name: " Milk ", Category: "Groceries"}
	require.NoError(t, products.Create(ctx, p))
	assert.Equal(t, "milk", p.NormalizedName)

	found, err := products.FindByNormalizedName(ctx, "milk")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, p.ID, found[0].ID)

	s := &entity.SuggestedNewProduct{ProductName: "Widget123", NormalizedName: "widget123", Source: entity.SourceSearchBar, Status: entity.StatusPending}
	require.NoError(t, suggestions.Create(ctx, s))
	require.NoError(t, suggestions.UpdateStatus(ctx, s.ID, entity.StatusRejected))

	got, err := suggestions.FindByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, got.Status)
	assert.False(t, got.Timestamp.IsZero())

	_, err = suggestions.FindByID(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrSuggestionNotFound)
}
