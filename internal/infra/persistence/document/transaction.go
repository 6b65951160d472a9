// Package document contains the concrete implementation of the persistence
// layer on top of a repository.DocumentStore.
package document

import (
	"context"
	"fmt"

	"marketsync/internal/domain/entity"
	domainerrors "marketsync/internal/domain/errors"
	"marketsync/internal/domain/repository"
	"marketsync/internal/infra/persistence/model"
)

// batchTransactionManager implements the domain's TransactionManager with
// the store's atomic multi-path update.
type batchTransactionManager struct {
	store repository.DocumentStore
}

// writeBatch implements the domain's WriteBatch. It only stages paths; the
// store sees nothing until Execute commits.
type writeBatch struct {
	store   repository.DocumentStore
	updates map[string]any
}

// NewTransactionManager is the constructor for batchTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(store repository.DocumentStore) repository.TransactionManager {
	return &batchTransactionManager{store: store}
}

// Execute runs fn against a fresh batch and commits the staged paths in one update.
func (tm *batchTransactionManager) Execute(ctx context.Context, fn func(batch repository.WriteBatch) error) error {
	batch := &writeBatch{store: tm.store, updates: make(map[string]any)}

	// Nothing is written when the application logic fails.
	if err := fn(batch); err != nil {
		return err
	}
	if batch.Len() == 0 {
		return nil
	}

	if err := tm.store.Update(ctx, batch.updates); err != nil {
		return domainerrors.NewStoreUnavailableError(fmt.Sprintf("commit %d paths", batch.Len()), err)
	}

	return nil
}

func (b *writeBatch) ArchiveAdvertisement(ad *entity.Advertisement, storeName string) string {
	key := b.store.NewKey(repository.CollectionPriceHistory)
	b.updates[repository.Path(repository.CollectionPriceHistory, key)] = model.NewPriceHistoryWrite(ad, storeName)
	b.updates[model.ArchivedFlagPath(ad.ID)] = true

	return key
}

func (b *writeBatch) CreateCanonicalProduct(product *entity.CanonicalProduct) string {
	key := b.store.NewKey(repository.CollectionCanonicalProducts)
	doc := model.NewCanonicalProductDocument(product)
	b.updates[repository.Path(repository.CollectionCanonicalProducts, key)] = doc

	product.ID = key
	product.NormalizedName = doc.NormalizedName

	return key
}

func (b *writeBatch) SetSuggestionStatus(id string, status entity.SuggestionStatus) {
	b.updates[model.SuggestionStatusPath(id)] = string(status)
}

func (b *writeBatch) Len() int {
	return len(b.updates)
}
