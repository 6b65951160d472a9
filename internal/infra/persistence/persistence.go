// Package persistence selects the document store backend and provides the
// repositories built on it.
package persistence

import (
	"context"
	"log/slog"

	"marketsync/config"
	"marketsync/internal/domain/repository"
	"marketsync/internal/errors"
	"marketsync/internal/infra/firebaseapp"
	"marketsync/internal/infra/persistence/document"
	"marketsync/internal/infra/persistence/memory"
	"marketsync/internal/infra/persistence/rtdb"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// Params holds dependencies for the DocumentStore, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	App    *firebase.App `optional:"true"`
	Logger *slog.Logger
}

// Module provides the document store, the repositories and the transaction manager.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewDocumentStore,
		document.NewAdvertisementRepository,
		document.NewStoreRepository,
		document.NewPriceHistoryRepository,
		document.NewCanonicalProductRepository,
		document.NewSuggestionRepository,
		document.NewUserSettingsRepository,
		document.NewTransactionManager,
	),
)

// NewDocumentStore opens the configured backend.
func NewDocumentStore(params Params) (repository.DocumentStore, error) {
	backend := config.StoreBackendFirebase
	if params.Config.Store != nil && params.Config.Store.Backend != "" {
		backend = params.Config.Store.Backend
	}

	switch backend {
	case config.StoreBackendMemory:
		params.Logger.Warn("Using the in-memory document store, data is lost on restart")

		return memory.NewStore(), nil
	case config.StoreBackendFirebase:
		if params.App == nil {
			return nil, errors.Wrap(firebaseapp.ErrNotConfigured, "store backend firebase")
		}
		store, err := rtdb.NewStore(params.Ctx, params.App)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Connected to the realtime database")

		return store, nil
	default:
		return nil, errors.Errorf("unknown store backend %q", backend)
	}
}
