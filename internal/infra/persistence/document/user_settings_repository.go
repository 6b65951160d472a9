package document

import (
	"context"

	"marketsync/internal/domain/entity"
	"marketsync/internal/domain/repository"
	"marketsync/internal/infra/persistence/model"
)

// userSettingsRepository implements the domain.UserSettingsRepository interface.
type userSettingsRepository struct {
	store repository.DocumentStore
}

// NewUserSettingsRepository is the constructor for userSettingsRepository.
func NewUserSettingsRepository(store repository.DocumentStore) repository.UserSettingsRepository {
	return &userSettingsRepository{store: store}
}

func (repo *userSettingsRepository) FindPreferredLocation(ctx context.Context, userID string) (*entity.PreferredLocation, error) {
	raw, ok, err := repo.store.Read(ctx, model.PreferredLocationPath(userID))
	if err != nil {
		return nil, unavailable("read preferred location", err)
	}
	if !ok {
		return nil, nil
	}

	return model.DecodePreferredLocation(userID, raw)
}

func (repo *userSettingsRepository) SavePreferredLocation(ctx context.Context, userID string, location *entity.PreferredLocation) error {
	if err := repo.store.Write(ctx, model.PreferredLocationPath(userID), model.NewPreferredLocationDocument(location)); err != nil {
		return unavailable("save preferred location", err)
	}

	return nil
}
