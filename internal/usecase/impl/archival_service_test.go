package impl

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"marketsync/internal/domain/entity"
	"marketsync/internal/domain/repository"
	"marketsync/internal/domain/service"
	"marketsync/internal/errors"
	"marketsync/internal/infra/guard"
	"marketsync/internal/infra/persistence/memory"
	mockRepo "marketsync/internal/mocks/repository"
	mockService "marketsync/internal/mocks/service"
	"marketsync/internal/querycache"
	"marketsync/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordedRun struct {
	trigger  string
	archived int
	skipped  int
	err      error
}

type fakeRecorder struct {
	runs []recordedRun
}

func (r *fakeRecorder) ObserveRun(trigger string, _ time.Duration, archived, skipped int, err error) {
	r.runs = append(r.runs, recordedRun{trigger: trigger, archived: archived, skipped: skipped, err: err})
}

// fakeBatch records staged writes for services tested against a mocked
// TransactionManager.
type fakeBatch struct {
	archived  []string
	products  []*entity.CanonicalProduct
	statuses  map[string]entity.SuggestionStatus
	nextIndex int
}

func (b *fakeBatch) ArchiveAdvertisement(ad *entity.Advertisement, _ string) string {
	b.archived = append(b.archived, ad.ID)
	b.nextIndex++

	return fmt.Sprintf("h%d", b.nextIndex)
}

func (b *fakeBatch) CreateCanonicalProduct(product *entity.CanonicalProduct) string {
	b.products = append(b.products, product)
	product.ID = "p-new"

	return product.ID
}

func (b *fakeBatch) SetSuggestionStatus(id string, status entity.SuggestionStatus) {
	if b.statuses == nil {
		b.statuses = make(map[string]entity.SuggestionStatus)
	}
	b.statuses[id] = status
}

func (b *fakeBatch) Len() int {
	return len(b.archived)*2 + len(b.products) + len(b.statuses)
}

func seedMarket(t *testing.T, backend *memoryBackend, now time.Time) (expired, active *entity.Advertisement) {
	t.Helper()
	ctx := context.Background()

	store := &entity.Store{OwnerID: "u1", Name: "Corner Shop"}
	require.NoError(t, backend.stores.Create(ctx, store))

	expired = &entity.Advertisement{
		StoreID:    store.ID,
		Name:       "Widget",
		Price:      10,
		Category:   "Electronics",
		CreatedAt:  now.Add(-48 * time.Hour),
		ValidUntil: now.Add(-1000 * time.Millisecond),
	}
	active = &entity.Advertisement{
		StoreID:    store.ID,
		Name:       "Gadget",
		Price:      20,
		Category:   "Electronics",
		CreatedAt:  now.Add(-time.Hour),
		ValidUntil: now.Add(24 * time.Hour),
	}
	require.NoError(t, backend.ads.Create(ctx, expired))
	require.NoError(t, backend.ads.Create(ctx, active))

	return expired, active
}

func TestArchivalService_RunOnce_ArchivesExpiredAdvertisement(t *testing.T) {
	ctx := context.Background()
	backend := newMemoryBackend()
	expired, active := seedMarket(t, backend, time.Now())

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().
		PublishMarketEvent(mock.Anything, mock.MatchedBy(func(e *service.MarketEvent) bool {
			return e.Type == service.EventAdvertisementArchived && e.AdvertisementID == expired.ID && e.RequestID != ""
		})).
		Return(nil).
		Once()

	recorder := &fakeRecorder{}
	cache := newTestCache()
	svc := NewArchivalService(backend.ads, backend.stores, backend.tx, guard.NewLocalGuard(), publisher, cache, recorder, newTestConfig(), newDiscardLogger())

	result, err := svc.RunOnce(ctx, usecase.TriggerSchedule)
	require.NoError(t, err)
	assert.Equal(t, []string{expired.ID}, result.Archived)
	require.Len(t, result.HistoryEntries, 1)
	assert.Equal(t, 1, result.ActiveCount)
	require.Len(t, result.Active, 1)
	assert.Equal(t, active.ID, result.Active[0].ID)

	stored, err := backend.ads.FindByID(ctx, expired.ID)
	require.NoError(t, err)
	assert.True(t, stored.Archived)

	history, err := backend.history.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, result.HistoryEntries[0], history[0].ID)
	assert.Equal(t, expired.ID, history[0].AdvertisementID)
	assert.Equal(t, "Widget", history[0].ProductName)
	assert.Equal(t, "Widget", history[0].ProductID)
	assert.Equal(t, "Corner Shop", history[0].StoreName)
	assert.InDelta(t, 10.0, history[0].Price, 0.001)
	assert.False(t, history[0].ArchivedAt.IsZero())

	assert.Equal(t, querycache.StateFresh, cache.Peek(activeKey))
	assert.Equal(t, querycache.StateFresh, cache.Peek(storesKey))

	require.Len(t, recorder.runs, 1)
	assert.Equal(t, recordedRun{trigger: usecase.TriggerSchedule, archived: 1}, recorder.runs[0])
}

func TestArchivalService_RunOnce_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	backend := newMemoryBackend()
	seedMarket(t, backend, time.Now())

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishMarketEvent(mock.Anything, mock.Anything).Return(nil).Once()

	svc := NewArchivalService(backend.ads, backend.stores, backend.tx, guard.NewLocalGuard(), publisher, newTestCache(), nil, newTestConfig(), newDiscardLogger())

	_, err := svc.RunOnce(ctx, usecase.TriggerSchedule)
	require.NoError(t, err)

	second, err := svc.RunOnce(ctx, usecase.TriggerSchedule)
	require.NoError(t, err)
	assert.Empty(t, second.Archived)
	assert.Equal(t, 1, second.ActiveCount)

	history, err := backend.history.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestArchivalService_Reconcile_CommitFailureReleasesClaims(t *testing.T) {
	ctx := context.Background()
	var failing atomic.Bool
	backend := newMemoryBackend(memory.WithFaults(func(op string) error {
		if op == "update" && failing.Load() {
			return errors.New("connection reset")
		}

		return nil
	}))
	expired, _ := seedMarket(t, backend, time.Now())

	ads, err := backend.ads.FindAll(ctx)
	require.NoError(t, err)
	failing.Store(true)

	recorder := &fakeRecorder{}
	localGuard := guard.NewLocalGuard()
	publisher := mockService.NewMockEventPublisher(t)
	svc := NewArchivalService(backend.ads, backend.stores, backend.tx, localGuard, publisher, newTestCache(), recorder, newTestConfig(), newDiscardLogger())

	result, err := svc.Reconcile(ctx, ads, map[string]string{}, usecase.TriggerView)
	require.Error(t, err)
	assert.Nil(t, result)

	failing.Store(false)
	stored, err := backend.ads.FindByID(ctx, expired.ID)
	require.NoError(t, err)
	assert.False(t, stored.Archived)

	history, err := backend.history.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)

	claimed, err := localGuard.Claim(ctx, []string{expired.ID}, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []string{expired.ID}, claimed)

	require.Len(t, recorder.runs, 1)
	assert.Error(t, recorder.runs[0].err)
}

func TestArchivalService_Reconcile_SkipsClaimedAdvertisements(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	ads := []*entity.Advertisement{
		{ID: "a1", StoreID: "s1", Name: "Old", Price: 1, ValidUntil: now.Add(-time.Hour)},
		{ID: "a2", StoreID: "s1", Name: "New", Price: 1, ValidUntil: now.Add(time.Hour)},
	}

	archiveGuard := mockService.NewMockArchiveGuard(t)
	archiveGuard.EXPECT().Claim(ctx, []string{"a1"}, defaultGuardTTL).Return([]string{}, nil)
	txManager := mockRepo.NewMockTransactionManager(t)

	svc := NewArchivalService(
		mockRepo.NewMockAdvertisementRepository(t),
		mockRepo.NewMockStoreRepository(t),
		txManager,
		archiveGuard,
		mockService.NewMockEventPublisher(t),
		newTestCache(),
		nil,
		newTestConfig(),
		newDiscardLogger(),
	)

	result, err := svc.Reconcile(ctx, ads, map[string]string{"s1": "Shop"}, usecase.TriggerView)
	require.NoError(t, err)
	assert.Empty(t, result.Archived)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.ActiveCount)
}

func TestArchivalService_Reconcile_GuardFailureArchivesUnguarded(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	ads := []*entity.Advertisement{
		{ID: "a1", StoreID: "gone", Name: "Old", Price: 1, ValidUntil: now.Add(-time.Hour)},
		{ID: "a2", StoreID: "s1", Name: "Archived", Price: 1, ValidUntil: now.Add(-time.Hour), Archived: true},
	}

	archiveGuard := mockService.NewMockArchiveGuard(t)
	archiveGuard.EXPECT().Claim(ctx, []string{"a1"}, defaultGuardTTL).Return(nil, errors.New("redis down"))

	batch := &fakeBatch{}
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.WriteBatch) error) error {
			return fn(batch)
		})

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishMarketEvent(ctx, mock.Anything).Return(errors.New("topic missing"))

	svc := NewArchivalService(
		mockRepo.NewMockAdvertisementRepository(t),
		mockRepo.NewMockStoreRepository(t),
		txManager,
		archiveGuard,
		publisher,
		newTestCache(),
		nil,
		newTestConfig(),
		newDiscardLogger(),
	)

	result, err := svc.Reconcile(ctx, ads, map[string]string{"s1": "Shop"}, usecase.TriggerPush)
	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, result.Archived)
	assert.Equal(t, []string{"a1"}, batch.archived)
	assert.Equal(t, 0, result.ActiveCount)
}
