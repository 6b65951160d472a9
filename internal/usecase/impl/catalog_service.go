package impl

import (
	"context"
	"log/slog"
	"strings"

	"marketsync/internal/domain/entity"
	domainerrors "marketsync/internal/domain/errors"
	"marketsync/internal/domain/repository"
	"marketsync/internal/errors"
	"marketsync/internal/querycache"
	"marketsync/internal/usecase"
)

type catalogService struct {
	catalogRepo    repository.CanonicalProductRepository
	suggestionRepo repository.SuggestionRepository
	txManager      repository.TransactionManager
	cache          *querycache.Client
	logger         *slog.Logger
}

// NewCatalogService creates the catalog administration service.
func NewCatalogService(
	catalogRepo repository.CanonicalProductRepository,
	suggestionRepo repository.SuggestionRepository,
	txManager repository.TransactionManager,
	cache *querycache.Client,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo:    catalogRepo,
		suggestionRepo: suggestionRepo,
		txManager:      txManager,
		cache:          cache,
		logger:         logger,
	}
}

func (s *catalogService) ListCanonicalProducts(ctx context.Context) ([]*entity.CanonicalProduct, error) {
	products, err := querycache.Fetch(ctx, s.cache, catalogKey, s.catalogRepo.FindAll)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list canonical products")
	}

	return products, nil
}

// CreateCanonicalProduct adds a product to the catalog directly.
func (s *catalogService) CreateCanonicalProduct(ctx context.Context, input *usecase.CanonicalProductInput) (*entity.CanonicalProduct, error) {
	product, err := s.newProduct(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := s.catalogRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create canonical product")
	}
	s.seedCatalog(product)
	s.logger.Info("Canonical product created", "productId", product.ID, "name", product.Name)

	return product, nil
}

// ListSuggestions returns the review queue split into pending and reviewed.
func (s *catalogService) ListSuggestions(ctx context.Context) (*usecase.SuggestionQueue, error) {
	suggestions, err := querycache.Fetch(ctx, s.cache, suggestionsKey, s.suggestionRepo.FindAll)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list suggestions")
	}

	queue := &usecase.SuggestionQueue{
		Pending:  []*entity.SuggestedNewProduct{},
		Reviewed: []*entity.SuggestedNewProduct{},
	}
	for _, suggestion := range suggestions {
		if suggestion.Status == entity.StatusPending {
			queue.Pending = append(queue.Pending, suggestion)
		} else {
			queue.Reviewed = append(queue.Reviewed, suggestion)
		}
	}

	return queue, nil
}

// SetSuggestionStatus marks a suggestion reviewed or rejected. Promotion goes
// through PromoteSuggestion.
func (s *catalogService) SetSuggestionStatus(ctx context.Context, id string, status entity.SuggestionStatus) error {
	if status != entity.StatusReviewed && status != entity.StatusRejected {
		return domainerrors.ErrInvalidSuggestionStatus.WithDetails(string(status))
	}

	if _, err := s.reviewable(ctx, id); err != nil {
		return err
	}
	if err := s.suggestionRepo.UpdateStatus(ctx, id, status); err != nil {
		return errors.Wrap(err, "failed to update suggestion status")
	}
	s.cache.Invalidate(suggestionsKey)

	return nil
}

// PromoteSuggestion writes the new catalog product and the suggestion's
// added-to-catalog status in one atomic update.
func (s *catalogService) PromoteSuggestion(ctx context.Context, id string, input *usecase.CanonicalProductInput) (*entity.CanonicalProduct, error) {
	suggestion, err := s.reviewable(ctx, id)
	if err != nil {
		return nil, err
	}

	if input == nil {
		input = &usecase.CanonicalProductInput{}
	}
	if strings.TrimSpace(input.Name) == "" {
		input.Name = suggestion.ProductName
	}
	product, err := s.newProduct(ctx, input)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Execute(ctx, func(batch repository.WriteBatch) error {
		product.ID = batch.CreateCanonicalProduct(product)
		batch.SetSuggestionStatus(suggestion.ID, entity.StatusAddedToCatalog)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to promote suggestion")
	}

	s.seedCatalog(product)
	s.cache.Invalidate(suggestionsKey)
	s.logger.Info("Suggestion promoted to catalog", "suggestionId", id, "productId", product.ID)

	return product, nil
}

// reviewable returns the suggestion unless it is missing or already final.
func (s *catalogService) reviewable(ctx context.Context, id string) (*entity.SuggestedNewProduct, error) {
	suggestion, err := s.suggestionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSuggestionNotFound) {
			return nil, domainerrors.ErrSuggestionNotFound
		}

		return nil, errors.Wrap(err, "failed to find suggestion")
	}
	if suggestion.Status == entity.StatusAddedToCatalog || suggestion.Status == entity.StatusRejected {
		return nil, domainerrors.ErrSuggestionAlreadyReviewed.WithDetails(string(suggestion.Status))
	}

	return suggestion, nil
}

// newProduct validates input and rejects names already in the catalog.
func (s *catalogService) newProduct(ctx context.Context, input *usecase.CanonicalProductInput) (*entity.CanonicalProduct, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("product name is required")
	}
	category, ok := entity.CategoryName(input.Category)
	if !ok {
		return nil, domainerrors.ErrInvalidCategory.WithDetails(input.Category)
	}

	normalized := entity.NormalizeProductName(name)
	existing, err := s.catalogRepo.FindByNormalizedName(ctx, normalized)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up catalog")
	}
	if len(existing) > 0 {
		return nil, domainerrors.ErrCanonicalProductExists.WithDetails(existing[0].Name)
	}

	return &entity.CanonicalProduct{
		Name:            name,
		NormalizedName:  normalized,
		Category:        category,
		Description:     strings.TrimSpace(input.Description),
		DefaultImageURL: strings.TrimSpace(input.DefaultImageURL),
	}, nil
}

// seedCatalog appends product to the cached catalog, or drops the cached
// catalog when there is none to extend.
func (s *catalogService) seedCatalog(product *entity.CanonicalProduct) {
	cached, ok := s.cache.Get(catalogKey)
	catalog, isCatalog := cached.([]*entity.CanonicalProduct)
	if !ok || !isCatalog {
		s.cache.Invalidate(catalogKey)

		return
	}

	next := make([]*entity.CanonicalProduct, 0, len(catalog)+1)
	next = append(next, catalog...)
	next = append(next, product)
	s.cache.Set(catalogKey, next)
}
