package impl

import (
	"context"
	"log/slog"
	"strings"

	"marketsync/internal/domain/entity"
	domainerrors "marketsync/internal/domain/errors"
	"marketsync/internal/domain/repository"
	"marketsync/internal/domain/service"
	"marketsync/internal/errors"
	"marketsync/internal/querycache"
	"marketsync/internal/usecase"
)

type locationService struct {
	settingsRepo repository.UserSettingsRepository
	cache        *querycache.Client
	logger       *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(
	settingsRepo repository.UserSettingsRepository,
	cache *querycache.Client,
	logger *slog.Logger,
) usecase.LocationUsecase {
	return &locationService{
		settingsRepo: settingsRepo,
		cache:        cache,
		logger:       logger,
	}
}

// GetPreferredLocation reads the user's preferred location through the cache
func (s *locationService) GetPreferredLocation(ctx context.Context, userID string) (*entity.PreferredLocation, error) {
	location, err := querycache.Fetch(ctx, s.cache, preferredLocationKey(userID),
		func(ctx context.Context) (*entity.PreferredLocation, error) {
			return s.settingsRepo.FindPreferredLocation(ctx, userID)
		},
		querycache.Enabled(userID != ""),
	)
	if err != nil {
		if errors.Is(err, querycache.ErrQueryDisabled) {
			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, errors.Wrap(err, "failed to find preferred location")
	}

	return location, nil
}

// SavePreferredLocation validates and stores the location, then seeds the cache
func (s *locationService) SavePreferredLocation(ctx context.Context, userID string, input *usecase.PreferredLocationInput) (*entity.PreferredLocation, error) {
	if userID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}
	if input.Latitude < -90 || input.Latitude > 90 {
		return nil, domainerrors.ErrInvalidInput.WithDetails("latitude must be between -90 and 90")
	}
	if input.Longitude < -180 || input.Longitude > 180 {
		return nil, domainerrors.ErrInvalidInput.WithDetails("longitude must be between -180 and 180")
	}

	location := &entity.PreferredLocation{
		Address:   strings.TrimSpace(input.Address),
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}
	if err := s.settingsRepo.SavePreferredLocation(ctx, userID, location); err != nil {
		return nil, errors.Wrap(err, "failed to save preferred location")
	}
	s.cache.Set(preferredLocationKey(userID), location)

	return location, nil
}

// ResolveOrigin returns the live position, else the preferred location, else
// an unknown origin naming the geolocation failure.
func (s *locationService) ResolveOrigin(ctx context.Context, userID string, geo service.Geolocator) entity.Origin {
	if geo == nil {
		geo = service.ReportedPosition{}
	}

	point, err := geo.CurrentPosition(ctx)
	if err == nil {
		return entity.Origin{Point: point, Source: entity.OriginLive}
	}

	reason := service.ErrGeoPositionUnavailable.Error()
	for _, geoErr := range []error{
		service.ErrGeoPermissionDenied,
		service.ErrGeoPositionUnavailable,
		service.ErrGeoTimeout,
		service.ErrGeoUnsupported,
	} {
		if errors.Is(err, geoErr) {
			reason = geoErr.Error()

			break
		}
	}

	if userID != "" {
		location, err := s.GetPreferredLocation(ctx, userID)
		if err != nil {
			s.logger.Warn("Preferred location unavailable, distances unknown", "userId", userID, "error", err)
		}
		if location != nil {
			return entity.Origin{Point: location.Point(), Source: entity.OriginPreferred, Reason: reason}
		}
	}

	return entity.Origin{Source: entity.OriginUnknown, Reason: reason}
}
