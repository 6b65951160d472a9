package service

import (
	"context"

	"marketsync/internal/errors"
)

// ErrInvalidIDToken is returned for expired, revoked or malformed ID tokens.
var ErrInvalidIDToken = errors.New("invalid id token")

// Identity is the signed-in user behind a request.
type Identity struct {
	UID   string
	Email string
	Admin bool
}

// IdentityProvider verifies sessions issued by the auth provider.
type IdentityProvider interface {
	// VerifyIDToken returns ErrInvalidIDToken for tokens that do not verify.
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)

	// RevokeSessions revokes every refresh token of uid.
	RevokeSessions(ctx context.Context, uid string) error
}
