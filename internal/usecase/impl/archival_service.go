package impl

import (
	"context"
	"log/slog"
	"time"

	"marketsync/config"
	deliverycontext "marketsync/internal/delivery/context"
	"marketsync/internal/domain/entity"
	"marketsync/internal/domain/repository"
	"marketsync/internal/domain/service"
	"marketsync/internal/domain/view"
	"marketsync/internal/errors"
	"marketsync/internal/querycache"
	"marketsync/internal/usecase"

	"github.com/google/uuid"
)

const defaultGuardTTL = 10 * time.Minute

type archivalService struct {
	adRepo    repository.AdvertisementRepository
	storeRepo repository.StoreRepository
	txManager repository.TransactionManager
	guard     service.ArchiveGuard
	publisher service.EventPublisher
	cache     *querycache.Client
	recorder  usecase.ReconcileRecorder
	guardTTL  time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// NewArchivalService creates the reconciliation process.
func NewArchivalService(
	adRepo repository.AdvertisementRepository,
	storeRepo repository.StoreRepository,
	txManager repository.TransactionManager,
	guard service.ArchiveGuard,
	publisher service.EventPublisher,
	cache *querycache.Client,
	recorder usecase.ReconcileRecorder,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ArchivalUsecase {
	guardTTL := defaultGuardTTL
	if cfg.Reconciler != nil && cfg.Reconciler.GuardTTL > 0 {
		guardTTL = cfg.Reconciler.GuardTTL
	}

	return &archivalService{
		adRepo:    adRepo,
		storeRepo: storeRepo,
		txManager: txManager,
		guard:     guard,
		publisher: publisher,
		cache:     cache,
		recorder:  recorder,
		guardTTL:  guardTTL,
		logger:    logger,
		now:       time.Now,
	}
}

// Reconcile archives every expired, unarchived advertisement of ads and
// returns the active ones.
//
// The archive flag and the history entry of every ad go out in one atomic
// update. Claims on the guard narrow the window in which two runs archive
// the same ad; they are kept until they expire after a successful commit and
// released when the commit fails.
func (s *archivalService) Reconcile(
	ctx context.Context,
	ads []*entity.Advertisement,
	storeNames map[string]string,
	trigger string,
) (result *usecase.ReconcileResult, err error) {
	start := s.now()
	defer func() {
		var archived, skipped int
		if result != nil {
			archived, skipped = len(result.Archived), result.Skipped
		}
		if s.recorder != nil {
			s.recorder.ObserveRun(trigger, time.Since(start), archived, skipped, err)
		}
	}()

	expired, active := view.Partition(ads, start)
	result = &usecase.ReconcileResult{
		Active:         active,
		ActiveCount:    len(active),
		Archived:       []string{},
		HistoryEntries: []string{},
	}
	if len(expired) == 0 {
		return result, nil
	}

	toArchive, claimed := s.claim(ctx, expired)
	result.Skipped = len(expired) - len(toArchive)
	if len(toArchive) == 0 {
		s.logger.Info("Expired advertisements claimed by a concurrent run", "skipped", result.Skipped)

		return result, nil
	}

	historyIDs := make(map[string]string, len(toArchive))
	err = s.txManager.Execute(ctx, func(batch repository.WriteBatch) error {
		for _, ad := range toArchive {
			storeName, ok := storeNames[ad.StoreID]
			if !ok {
				storeName = view.UnknownStoreName
			}
			historyIDs[ad.ID] = batch.ArchiveAdvertisement(ad, storeName)
		}

		return nil
	})
	if err != nil {
		s.release(ctx, claimed)
		s.logger.Error("Failed to archive expired advertisements",
			"count", len(toArchive),
			"error", err,
		)

		return nil, errors.Wrap(err, "archive expired advertisements")
	}

	for _, ad := range toArchive {
		result.Archived = append(result.Archived, ad.ID)
		result.HistoryEntries = append(result.HistoryEntries, historyIDs[ad.ID])
	}
	s.logger.Info("Archived expired advertisements",
		"trigger", trigger,
		"archived", len(toArchive),
		"skipped", result.Skipped,
	)

	s.refreshCache(ads, historyIDs)
	s.publishArchived(ctx, toArchive, historyIDs, storeNames)

	return result, nil
}

// RunOnce reconciles the current store contents and seeds the active view.
func (s *archivalService) RunOnce(ctx context.Context, trigger string) (*usecase.ReconcileResult, error) {
	ads, err := s.adRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read advertisements")
	}
	stores, err := s.storeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read stores")
	}

	result, err := s.Reconcile(ctx, ads, entity.StoreNames(stores), trigger)
	if err != nil {
		return nil, err
	}

	s.cache.Set(storesKey, stores)
	s.cache.Set(activeKey, result.Active)

	return result, nil
}

// claim returns the expired ads this run may archive and the ids it holds a
// claim on. A failing guard degrades to archiving every expired ad.
func (s *archivalService) claim(ctx context.Context, expired []*entity.Advertisement) ([]*entity.Advertisement, []string) {
	ids := make([]string, 0, len(expired))
	for _, ad := range expired {
		ids = append(ids, ad.ID)
	}

	claimed, err := s.guard.Claim(ctx, ids, s.guardTTL)
	if err != nil {
		s.logger.Warn("Archive guard unavailable, archiving without claims", "error", err)

		return expired, claimed
	}

	owned := make(map[string]struct{}, len(claimed))
	for _, id := range claimed {
		owned[id] = struct{}{}
	}
	toArchive := make([]*entity.Advertisement, 0, len(claimed))
	for _, ad := range expired {
		if _, ok := owned[ad.ID]; ok {
			toArchive = append(toArchive, ad)
		}
	}

	return toArchive, claimed
}

func (s *archivalService) release(ctx context.Context, ids []string) {
	if len(ids) == 0 {
		return
	}
	if err := s.guard.Release(context.WithoutCancel(ctx), ids); err != nil {
		s.logger.Warn("Failed to release archive claims", "count", len(ids), "error", err)
	}
}

// refreshCache replaces the raw advertisements with their archived state so a
// later reconciliation over the cached snapshot does not archive them again.
func (s *archivalService) refreshCache(ads []*entity.Advertisement, historyIDs map[string]string) {
	updated := make([]*entity.Advertisement, 0, len(ads))
	for _, ad := range ads {
		if _, ok := historyIDs[ad.ID]; ok {
			archived := *ad
			archived.Archived = true
			ad = &archived
		}
		updated = append(updated, ad)
	}

	s.cache.Set(advertisementsKey, updated)
	s.cache.InvalidateCollection(historyKey.Collection)
}

func (s *archivalService) publishArchived(
	ctx context.Context,
	archived []*entity.Advertisement,
	historyIDs map[string]string,
	storeNames map[string]string,
) {
	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	for _, ad := range archived {
		event := &service.MarketEvent{
			Type:            service.EventAdvertisementArchived,
			RequestID:       requestID,
			AdvertisementID: ad.ID,
			HistoryEntryID:  historyIDs[ad.ID],
			ProductName:     ad.Name,
			Price:           ad.Price,
			StoreID:         ad.StoreID,
			OccurredAt:      s.now(),
		}
		if err := s.publisher.PublishMarketEvent(ctx, event); err != nil {
			s.logger.Warn("Failed to publish archival event",
				"advertisementId", ad.ID,
				"storeName", storeNames[ad.StoreID],
				"error", err,
			)
		}
	}
}
