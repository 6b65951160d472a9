package impl

import (
	"context"
	"testing"
	"time"

	"marketsync/internal/domain/entity"
	domainerrors "marketsync/internal/domain/errors"
	"marketsync/internal/domain/repository"
	"marketsync/internal/errors"
	"marketsync/internal/infra/persistence/memory"
	mockRepo "marketsync/internal/mocks/repository"
	"marketsync/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedSuggestion(t *testing.T, backend *memoryBackend, name string, status entity.SuggestionStatus) *entity.SuggestedNewProduct {
	t.Helper()

	suggestion := &entity.SuggestedNewProduct{
		ProductName:    name,
		NormalizedName: entity.NormalizeProductName(name),
		Source:         entity.SourceSearchBar,
		Timestamp:      time.Now(),
		Status:         status,
	}
	require.NoError(t, backend.suggestions.Create(context.Background(), suggestion))

	return suggestion
}

func TestCatalogService_PromoteSuggestion_WritesProductAndStatusTogether(t *testing.T) {
	ctx := context.Background()
	backend := newMemoryBackend()
	suggestion := seedSuggestion(t, backend, "Smart Lamp", entity.StatusPending)

	cache := newTestCache()
	svc := NewCatalogService(backend.catalog, backend.suggestions, backend.tx, cache, newDiscardLogger())

	product, err := svc.PromoteSuggestion(ctx, suggestion.ID, &usecase.CanonicalProductInput{Category: "home-kitchen"})
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "Smart Lamp", product.Name)
	assert.Equal(t, "smart lamp", product.NormalizedName)
	assert.Equal(t, "Home & Kitchen", product.Category)

	products, err := backend.catalog.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, product.ID, products[0].ID)

	stored, err := backend.suggestions.FindByID(ctx, suggestion.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAddedToCatalog, stored.Status)

	_, err = svc.PromoteSuggestion(ctx, suggestion.ID, nil)
	assert.ErrorIs(t, err, domainerrors.ErrSuggestionAlreadyReviewed)
}

func TestCatalogService_PromoteSuggestion_CommitFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	failing := false
	backend := newMemoryBackend(memory.WithFaults(func(op string) error {
		if failing && op == "update" {
			return errors.New("offline")
		}

		return nil
	}))
	suggestion := seedSuggestion(t, backend, "Smart Lamp", entity.StatusPending)
	failing = true

	svc := NewCatalogService(backend.catalog, backend.suggestions, backend.tx, newTestCache(), newDiscardLogger())

	_, err := svc.PromoteSuggestion(ctx, suggestion.ID, &usecase.CanonicalProductInput{Category: "other"})
	require.Error(t, err)

	failing = false
	products, err := backend.catalog.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	stored, err := backend.suggestions.FindByID(ctx, suggestion.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, stored.Status)
}

func TestCatalogService_CreateCanonicalProduct(t *testing.T) {
	ctx := context.Background()
	backend := newMemoryBackend()
	cache := newTestCache()
	svc := NewCatalogService(backend.catalog, backend.suggestions, backend.tx, cache, newDiscardLogger())

	listed, err := svc.ListCanonicalProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	product, err := svc.CreateCanonicalProduct(ctx, &usecase.CanonicalProductInput{Name: " iPhone 15 Pro ", Category: "Electronics"})
	require.NoError(t, err)
	assert.Equal(t, "iPhone 15 Pro", product.Name)

	listed, err = svc.ListCanonicalProducts(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, product.ID, listed[0].ID)

	_, err = svc.CreateCanonicalProduct(ctx, &usecase.CanonicalProductInput{Name: "IPHONE 15 PRO", Category: "Electronics"})
	assert.ErrorIs(t, err, domainerrors.ErrCanonicalProductExists)

	_, err = svc.CreateCanonicalProduct(ctx, &usecase.CanonicalProductInput{Name: "Toaster", Category: "kitchenware"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCategory)
}

func TestCatalogService_SetSuggestionStatus(t *testing.T) {
	ctx := context.Background()
	backend := newMemoryBackend()
	pending := seedSuggestion(t, backend, "Widget123", entity.StatusPending)
	rejected := seedSuggestion(t, backend, "Gizmo", entity.StatusRejected)

	svc := NewCatalogService(backend.catalog, backend.suggestions, backend.tx, newTestCache(), newDiscardLogger())

	queue, err := svc.ListSuggestions(ctx)
	require.NoError(t, err)
	assert.Len(t, queue.Pending, 1)
	assert.Len(t, queue.Reviewed, 1)

	err = svc.SetSuggestionStatus(ctx, pending.ID, entity.StatusAddedToCatalog)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSuggestionStatus)

	require.NoError(t, svc.SetSuggestionStatus(ctx, pending.ID, entity.StatusReviewed))

	queue, err = svc.ListSuggestions(ctx)
	require.NoError(t, err)
	assert.Empty(t, queue.Pending)
	assert.Len(t, queue.Reviewed, 2)

	err = svc.SetSuggestionStatus(ctx, rejected.ID, entity.StatusReviewed)
	assert.ErrorIs(t, err, domainerrors.ErrSuggestionAlreadyReviewed)

	err = svc.SetSuggestionStatus(ctx, "missing", entity.StatusReviewed)
	assert.ErrorIs(t, err, domainerrors.ErrSuggestionNotFound)
}

func TestCatalogService_PromoteSuggestion_UsesOneBatch(t *testing.T) {
	ctx := context.Background()
	suggestionRepo := mockRepo.NewMockSuggestionRepository(t)
	catalogRepo := mockRepo.NewMockCanonicalProductRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	suggestionRepo.EXPECT().FindByID(ctx, "s1").Return(&entity.SuggestedNewProduct{
		ID: "s1", ProductName: "Widget", Status: entity.StatusReviewed,
	}, nil)
	catalogRepo.EXPECT().FindByNormalizedName(ctx, "widget").Return(nil, nil)

	batch := &fakeBatch{}
	txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(func(_ context.Context, fn func(repository.WriteBatch) error) error {
		return fn(batch)
	})

	svc := NewCatalogService(catalogRepo, suggestionRepo, txManager, newTestCache(), newDiscardLogger())

	product, err := svc.PromoteSuggestion(ctx, "s1", &usecase.CanonicalProductInput{Category: "other"})
	require.NoError(t, err)
	assert.Equal(t, "p-new", product.ID)
	require.Len(t, batch.products, 1)
	assert.Equal(t, map[string]entity.SuggestionStatus{"s1": entity.StatusAddedToCatalog}, batch.statuses)
}
