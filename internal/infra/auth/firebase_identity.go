// Package auth verifies Firebase sessions for the domain IdentityProvider.
package auth

import (
	"context"
	"log/slog"
	"strings"

	"marketsync/internal/domain/service"
	"marketsync/internal/errors"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
)

// adminClaim is the custom claim granting catalog administration.
const adminClaim = "admin"

// tokenClient is the part of *auth.Client the provider uses.
type tokenClient interface {
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*fbauth.Token, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

type firebaseIdentityProvider struct {
	client tokenClient
	logger *slog.Logger
}

// NewFirebaseIdentityProvider creates an IdentityProvider on the app's auth client.
func NewFirebaseIdentityProvider(ctx context.Context, app *firebase.App, logger *slog.Logger) (service.IdentityProvider, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "create firebase auth client")
	}

	return &firebaseIdentityProvider{client: client, logger: logger}, nil
}

// VerifyIDToken implements service.IdentityProvider. Revoked sessions do not verify.
func (p *firebaseIdentityProvider) VerifyIDToken(ctx context.Context, idToken string) (*service.Identity, error) {
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return nil, service.ErrInvalidIDToken
	}

	token, err := p.client.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		if fbauth.IsIDTokenInvalid(err) || fbauth.IsIDTokenExpired(err) || fbauth.IsIDTokenRevoked(err) {
			return nil, errors.Wrap(service.ErrInvalidIDToken, err.Error())
		}

		return nil, errors.Wrap(err, "verify id token")
	}
	if strings.TrimSpace(token.UID) == "" {
		return nil, service.ErrInvalidIDToken
	}

	identity := &service.Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = strings.TrimSpace(email)
	}
	if admin, ok := token.Claims[adminClaim].(bool); ok {
		identity.Admin = admin
	}

	return identity, nil
}

// RevokeSessions implements service.IdentityProvider.
func (p *firebaseIdentityProvider) RevokeSessions(ctx context.Context, uid string) error {
	if err := p.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return errors.Wrapf(err, "revoke refresh tokens of %s", uid)
	}
	p.logger.Info("Revoked refresh tokens", slog.String("uid", uid))

	return nil
}
