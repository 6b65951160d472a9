// Package firebaseapp initializes the Firebase app shared by the realtime
// database store and the ID-token verifier.
package firebaseapp

import (
	"context"
	"log/slog"

	"marketsync/config"
	"marketsync/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// ErrNotConfigured is returned when a component requires Firebase but the
// configuration has neither a project nor a database URL.
var ErrNotConfigured = errors.New("firebase is not configured")

// Params holds dependencies for the Firebase app, injected by Fx.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Module provides *firebase.App, nil when Firebase is not configured.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)

// New creates the app when the configuration names a project or database.
// A nil app means every Firebase-backed component falls back to its local
// counterpart.
func New(params Params) (*firebase.App, error) {
	cfg := params.Config.Firebase
	if !Configured(cfg) {
		params.Logger.Info("Firebase not configured, using local backends")

		return nil, nil //nolint:nilnil
	}

	return NewApp(params.Ctx, cfg)
}

// Configured reports whether cfg is enough to build an app.
func Configured(cfg *config.FirebaseConfig) bool {
	return cfg != nil && (cfg.ProjectID != "" || cfg.DatabaseURL != "")
}

// NewApp creates the Firebase app from configuration. Without a credentials
// path, Application Default Credentials are used.
func NewApp(ctx context.Context, cfg *config.FirebaseConfig) (*firebase.App, error) {
	if !Configured(cfg) {
		return nil, ErrNotConfigured
	}

	fbCfg := &firebase.Config{
		ProjectID:   cfg.ProjectID,
		DatabaseURL: cfg.DatabaseURL,
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, fbCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}
