package impl

import (
	"io"
	"log/slog"

	"marketsync/config"
	"marketsync/internal/domain/repository"
	"marketsync/internal/infra/persistence/document"
	"marketsync/internal/infra/persistence/memory"
	"marketsync/internal/querycache"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{}
}

func newTestCache() *querycache.Client {
	return NewQueryCache(newTestConfig(), newDiscardLogger(), nil)
}

// memoryBackend wires the document repositories over one in-memory store.
type memoryBackend struct {
	store       *memory.Store
	ads         repository.AdvertisementRepository
	stores      repository.StoreRepository
	history     repository.PriceHistoryRepository
	catalog     repository.CanonicalProductRepository
	suggestions repository.SuggestionRepository
	settings    repository.UserSettingsRepository
	tx          repository.TransactionManager
}

func newMemoryBackend(opts ...memory.Option) *memoryBackend {
	store := memory.NewStore(opts...)
	logger := newDiscardLogger()

	return &memoryBackend{
		store:       store,
		ads:         document.NewAdvertisementRepository(store, logger),
		stores:      document.NewStoreRepository(store, logger),
		history:     document.NewPriceHistoryRepository(store, logger),
		catalog:     document.NewCanonicalProductRepository(store, logger),
		suggestions: document.NewSuggestionRepository(store, logger),
		settings:    document.NewUserSettingsRepository(store),
		tx:          document.NewTransactionManager(store),
	}
}
