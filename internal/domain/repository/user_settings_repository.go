package repository

import (
	"context"

	"marketsync/internal/domain/entity"
)

// UserSettingsRepository stores per-user settings under userSettings/{uid}.
type UserSettingsRepository interface {
	// FindPreferredLocation returns nil when the user never saved one.
	FindPreferredLocation(ctx context.Context, userID string) (*entity.PreferredLocation, error)

	SavePreferredLocation(ctx context.Context, userID string, location *entity.PreferredLocation) error
}
