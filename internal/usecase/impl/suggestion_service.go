package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"marketsync/internal/domain/entity"
	"marketsync/internal/domain/repository"
	"marketsync/internal/domain/service"
	"marketsync/internal/domain/view"
	"marketsync/internal/errors"
	"marketsync/internal/querycache"
	"marketsync/internal/usecase"
)

type suggestionService struct {
	catalogRepo    repository.CanonicalProductRepository
	suggestionRepo repository.SuggestionRepository
	assistant      service.ProductAssistant
	publisher      service.EventPublisher
	cache          *querycache.Client
	logger         *slog.Logger
}

// NewSuggestionService creates the catalog grounding service.
func NewSuggestionService(
	catalogRepo repository.CanonicalProductRepository,
	suggestionRepo repository.SuggestionRepository,
	assistant service.ProductAssistant,
	publisher service.EventPublisher,
	cache *querycache.Client,
	logger *slog.Logger,
) usecase.SuggestionUsecase {
	return &suggestionService{
		catalogRepo:    catalogRepo,
		suggestionRepo: suggestionRepo,
		assistant:      assistant,
		publisher:      publisher,
		cache:          cache,
		logger:         logger,
	}
}

// CheckAndSuggest reports a catalog match, or queues the name for review.
// Every failure is logged and reported as OutcomeNeutral.
func (s *suggestionService) CheckAndSuggest(ctx context.Context, input *usecase.CheckProductInput) *usecase.CheckResult {
	neutral := &usecase.CheckResult{Outcome: usecase.OutcomeNeutral}

	normalized := entity.NormalizeProductName(input.ProductName)
	if normalized == "" {
		s.logger.Warn("Skipping catalog check of an empty product name", "source", input.Source)

		return neutral
	}

	catalog, err := s.catalog(ctx)
	if err != nil {
		s.logger.Error("Catalog check failed", "productName", input.ProductName, "error", err)

		return neutral
	}
	if product, ok := view.MatchCatalog(normalized, catalog); ok {
		return &usecase.CheckResult{Outcome: usecase.OutcomeInCatalog, Product: product}
	}

	source := input.Source
	if !source.IsValid() {
		source = entity.SourceSearchBar
	}
	suggestion := &entity.SuggestedNewProduct{
		ProductName:    strings.TrimSpace(input.ProductName),
		NormalizedName: normalized,
		Source:         source,
		Timestamp:      time.Now(),
		Status:         entity.StatusPending,
		Lang:           input.Lang,
		UserID:         input.UserID,
	}
	if err := s.suggestionRepo.Create(ctx, suggestion); err != nil {
		s.logger.Error("Failed to record product suggestion", "productName", input.ProductName, "error", err)

		return neutral
	}
	s.cache.Invalidate(suggestionsKey)

	event := &service.MarketEvent{
		Type:         service.EventSuggestionCreated,
		SuggestionID: suggestion.ID,
		ProductName:  suggestion.ProductName,
		OccurredAt:   suggestion.Timestamp,
	}
	if err := s.publisher.PublishMarketEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish suggestion event", "suggestionId", suggestion.ID, "error", err)
	}

	return &usecase.CheckResult{Outcome: usecase.OutcomeSuggested, SuggestionID: suggestion.ID}
}

// RelatedProducts asks the assistant with the catalog as context and keeps
// the catalog-grounded answers when there are any.
func (s *suggestionService) RelatedProducts(ctx context.Context, productName, lang string) ([]string, error) {
	catalog, err := s.catalog(ctx)
	if err != nil {
		s.logger.Warn("Catalog unavailable, asking without catalog context", "error", err)
		catalog = nil
	}

	req := service.RelatedProductsRequest{
		ProductName:  strings.TrimSpace(productName),
		CatalogNames: view.CatalogNames(catalog),
		Lang:         lang,
	}
	if product, ok := view.MatchCatalog(productName, catalog); ok {
		req.Category = product.Category
	}

	names, err := s.assistant.RelatedProducts(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest related products")
	}

	return view.FilterRelated(names, catalog), nil
}

// IdentifyProduct names the product in an image and checks it against the catalog.
func (s *suggestionService) IdentifyProduct(ctx context.Context, input *usecase.IdentifyProductInput) (*usecase.IdentifyResult, error) {
	name, err := s.assistant.IdentifyProduct(ctx, input.Image, input.MIMEType, input.Lang)
	if err != nil {
		return nil, errors.Wrap(err, "failed to identify product")
	}

	check := s.CheckAndSuggest(ctx, &usecase.CheckProductInput{
		ProductName: name,
		Source:      entity.SourceImageAnalysis,
		Lang:        input.Lang,
		UserID:      input.UserID,
	})

	return &usecase.IdentifyResult{ProductName: name, Check: check}, nil
}

func (s *suggestionService) catalog(ctx context.Context) ([]*entity.CanonicalProduct, error) {
	return querycache.Fetch(ctx, s.cache, catalogKey, s.catalogRepo.FindAll)
}
