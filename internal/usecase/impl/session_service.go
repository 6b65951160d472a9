package impl

import (
	"context"
	"log/slog"

	domainerrors "marketsync/internal/domain/errors"
	"marketsync/internal/domain/service"
	"marketsync/internal/errors"
	"marketsync/internal/querycache"
	"marketsync/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	identity service.IdentityProvider
	cache    *querycache.Client
	logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	identity service.IdentityProvider,
	cache *querycache.Client,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		identity: identity,
		cache:    cache,
		logger:   logger,
	}
}

// Authenticate verifies an ID token.
func (srv *sessionService) Authenticate(ctx context.Context, idToken string) (*service.Identity, error) {
	identity, err := srv.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidIDToken) {
			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, errors.Wrap(err, "failed to verify id token")
	}

	return identity, nil
}

// SignOut drops the user's cached queries and revokes their refresh tokens.
func (srv *sessionService) SignOut(ctx context.Context, userID string) error {
	if userID == "" {
		return domainerrors.ErrUnauthenticated
	}

	srv.cache.InvalidateScope(userID)
	if err := srv.identity.RevokeSessions(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to revoke sessions")
	}
	srv.logger.Info("User signed out", "userId", userID)

	return nil
}
