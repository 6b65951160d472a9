package usecase

import (
	"context"

	"marketsync/internal/domain/service"
)

// SessionUsecase defines the interface for session handling
type SessionUsecase interface {
	// Authenticate resolves the identity behind an ID token.
	Authenticate(ctx context.Context, idToken string) (*service.Identity, error)

	// SignOut revokes the user's sessions and drops every user-scoped query.
	SignOut(ctx context.Context, userID string) error
}
