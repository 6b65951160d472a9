package impl

import (
	"log/slog"
	"time"

	"marketsync/config"
	"marketsync/internal/domain/constants"
	"marketsync/internal/domain/repository"
	"marketsync/internal/querycache"
)

// The store lookup map changes rarely.
const defaultStoresStaleTime = 15 * time.Minute

// Keys of the queries shared by the services.
//
//nolint:gochecknoglobals
var (
	advertisementsKey = querycache.NewKey(repository.CollectionAdvertisements)
	storesKey         = querycache.NewKey(repository.CollectionStores)
	activeKey         = querycache.NewKey(constants.QueryActiveAdvertisements)
	catalogKey        = querycache.NewKey(repository.CollectionCanonicalProducts)
	suggestionsKey    = querycache.NewKey(repository.CollectionSuggestedNewProducts)
	historyKey        = querycache.NewKey(repository.CollectionPriceHistory)
)

func userStoreKey(userID string) querycache.Key {
	return querycache.NewKey(constants.QueryUserStore, userID)
}

func preferredLocationKey(userID string) querycache.Key {
	return querycache.NewKey(constants.QueryPreferredLocation, userID)
}

// NewQueryCache creates the process-wide query cache. The active view depends
// on the raw advertisements and stores; owned-store lookups on stores.
func NewQueryCache(cfg *config.Config, logger *slog.Logger, recorder querycache.Recorder) *querycache.Client {
	opts := []querycache.Option{
		querycache.WithLogger(logger),
		querycache.WithRecorder(recorder),
		querycache.WithPolicy(constants.QueryActiveAdvertisements, querycache.Policy{
			DependsOn: []string{repository.CollectionAdvertisements, repository.CollectionStores},
		}),
		querycache.WithPolicy(constants.QueryUserStore, querycache.Policy{
			DependsOn: []string{repository.CollectionStores},
		}),
	}
	storesStaleTime := defaultStoresStaleTime
	if cfg.Cache != nil {
		opts = append(opts, querycache.WithDefaultStaleTime(cfg.Cache.StaleTime))
		if cfg.Cache.StoresStaleTime > 0 {
			storesStaleTime = cfg.Cache.StoresStaleTime
		}
	}
	opts = append(opts, querycache.WithPolicy(repository.CollectionStores, querycache.Policy{StaleTime: storesStaleTime}))

	return querycache.NewClient(opts...)
}
