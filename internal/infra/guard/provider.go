package guard

import (
	"context"
	"log/slog"

	"marketsync/config"
	"marketsync/internal/domain/service"
	"marketsync/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the ArchiveGuard, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewArchiveGuard returns a Redis guard when Redis is configured and the
// in-process guard otherwise.
func NewArchiveGuard(params Params) (service.ArchiveGuard, error) {
	cfg := params.Config.Redis
	if cfg == nil || (cfg.URL == "" && cfg.Address == "") {
		params.Logger.Info("Redis not configured, archive guard is in-process only")

		return NewLocalGuard(), nil
	}

	opts := &redis.Options{Addr: cfg.Address, Password: cfg.Password, DB: cfg.DB}
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, errors.Wrap(err, "parse redis url")
		}
		opts = parsed
	}

	client := redis.NewClient(opts)
	g, err := NewRedisGuard(client)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				// claims degrade to best effort, the reconciler keeps running
				params.Logger.Warn("Redis unreachable, archive claims will fail open", "error", err)
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Redis client")

			return client.Close()
		},
	})
	params.Logger.Info("Using Redis archive guard", slog.String("addr", opts.Addr))

	return g, nil
}

// Module provides the archive guard FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewArchiveGuard),
)
