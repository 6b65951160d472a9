package auth

import (
	"context"
	"log/slog"

	"marketsync/internal/domain/service"
	"marketsync/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// Params holds dependencies for the IdentityProvider, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	App    *firebase.App `optional:"true"`
	Logger *slog.Logger
}

// Module provides the identity provider FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewIdentityProvider),
)

// NewIdentityProvider verifies sessions with Firebase Auth. Without a
// Firebase app every token is rejected and only anonymous access works.
func NewIdentityProvider(params Params) (service.IdentityProvider, error) {
	if params.App == nil {
		params.Logger.Warn("Firebase not configured, signed-in requests will be rejected")

		return anonymousOnly{}, nil
	}

	return NewFirebaseIdentityProvider(params.Ctx, params.App, params.Logger)
}

// anonymousOnly is the IdentityProvider of a deployment without auth.
type anonymousOnly struct{}

func (anonymousOnly) VerifyIDToken(context.Context, string) (*service.Identity, error) {
	return nil, errors.Wrap(service.ErrInvalidIDToken, "authentication is not configured")
}

func (anonymousOnly) RevokeSessions(context.Context, string) error {
	return nil
}
