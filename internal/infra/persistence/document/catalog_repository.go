package document

import (
	"context"
	"log/slog"

	"marketsync/internal/domain/entity"
	"marketsync/internal/domain/repository"
	"marketsync/internal/infra/persistence/model"
)

// canonicalProductRepository implements the domain.CanonicalProductRepository interface.
type canonicalProductRepository struct {
	store  repository.DocumentStore
	logger *slog.Logger
}

// NewCanonicalProductRepository is the constructor for canonicalProductRepository.
func NewCanonicalProductRepository(store repository.DocumentStore, logger *slog.Logger) repository.CanonicalProductRepository {
	return &canonicalProductRepository{store: store, logger: logger}
}

func (repo *canonicalProductRepository) FindAll(ctx context.Context) ([]*entity.CanonicalProduct, error) {
	docs, err := repo.store.ReadAll(ctx, repository.CollectionCanonicalProducts)
	if err != nil {
		return nil, unavailable("read canonical products", err)
	}

	return decodeAll(repo.logger, docs, model.DecodeCanonicalProduct), nil
}

func (repo *canonicalProductRepository) FindByNormalizedName(ctx context.Context, normalized string) ([]*entity.CanonicalProduct, error) {
	docs, err := repo.store.QueryByChild(ctx, repository.CollectionCanonicalProducts, "normalizedName", normalized)
	if err != nil {
		return nil, unavailable("query canonical products by name", err)
	}

	return decodeAll(repo.logger, docs, model.DecodeCanonicalProduct), nil
}

func (repo *canonicalProductRepository) Create(ctx context.Context, product *entity.CanonicalProduct) error {
	key := repo.store.NewKey(repository.CollectionCanonicalProducts)
	doc := model.NewCanonicalProductDocument(product)
	if err := repo.store.Write(ctx, repository.Path(repository.CollectionCanonicalProducts, key), doc); err != nil {
		return unavailable("create canonical product", err)
	}
	product.ID = key
	product.NormalizedName = doc.NormalizedName

	return nil
}

// suggestionRepository implements the domain.SuggestionRepository interface.
type suggestionRepository struct {
	store  repository.DocumentStore
	logger *slog.Logger
}

// NewSuggestionRepository is the constructor for suggestionRepository.
func NewSuggestionRepository(store repository.DocumentStore, logger *slog.Logger) repository.SuggestionRepository {
	return &suggestionRepository{store: store, logger: logger}
}

func (repo *suggestionRepository) FindAll(ctx context.Context) ([]*entity.SuggestedNewProduct, error) {
	docs, err := repo.store.ReadAll(ctx, repository.CollectionSuggestedNewProducts)
	if err != nil {
		return nil, unavailable("read suggestions", err)
	}

	return decodeAll(repo.logger, docs, model.DecodeSuggestion), nil
}

func (repo *suggestionRepository) FindByID(ctx context.Context, id string) (*entity.SuggestedNewProduct, error) {
	raw, ok, err := repo.store.Read(ctx, repository.Path(repository.CollectionSuggestedNewProducts, id))
	if err != nil {
		return nil, unavailable("read suggestion", err)
	}
	if !ok {
		return nil, repository.ErrSuggestionNotFound
	}

	return model.DecodeSuggestion(id, raw)
}

func (repo *suggestionRepository) Create(ctx context.Context, suggestion *entity.SuggestedNewProduct) error {
	key := repo.store.NewKey(repository.CollectionSuggestedNewProducts)
	if err := repo.store.Write(ctx, repository.Path(repository.CollectionSuggestedNewProducts, key), model.NewSuggestionWrite(suggestion)); err != nil {
		return unavailable("create suggestion", err)
	}
	suggestion.ID = key

	return nil
}

func (repo *suggestionRepository) UpdateStatus(ctx context.Context, id string, status entity.SuggestionStatus) error {
	if err := repo.store.Write(ctx, model.SuggestionStatusPath(id), string(status)); err != nil {
		return unavailable("update suggestion status", err)
	}

	return nil
}
