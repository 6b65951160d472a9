package impl

import (
	"context"
	"strings"

	"marketsync/internal/domain/entity"
	domainerrors "marketsync/internal/domain/errors"
	"marketsync/internal/domain/repository"
	"marketsync/internal/domain/view"
	"marketsync/internal/errors"
	"marketsync/internal/querycache"
	"marketsync/internal/usecase"
)

type historyService struct {
	historyRepo repository.PriceHistoryRepository
	cache       *querycache.Client
}

// NewHistoryService creates the price monitoring service.
func NewHistoryService(historyRepo repository.PriceHistoryRepository, cache *querycache.Client) usecase.HistoryUsecase {
	return &historyService{historyRepo: historyRepo, cache: cache}
}

func (s *historyService) ProductNames(ctx context.Context) ([]string, error) {
	entries, err := s.entries(ctx)
	if err != nil {
		return nil, err
	}

	return view.ProductNames(entries), nil
}

// ProductHistory returns the series of productName with duplicate archivals
// of one advertisement collapsed.
func (s *historyService) ProductHistory(ctx context.Context, productName string) (*usecase.ProductHistory, error) {
	if strings.TrimSpace(productName) == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("product name is required")
	}

	entries, err := s.entries(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.ProductHistory{
		ProductName: productName,
		Entries:     view.ProductHistory(entries, productName),
	}, nil
}

func (s *historyService) entries(ctx context.Context) ([]*entity.PriceHistoryEntry, error) {
	entries, err := querycache.Fetch(ctx, s.cache, historyKey, s.historyRepo.FindAll)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read price history")
	}

	return entries, nil
}
