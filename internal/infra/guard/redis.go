package guard

import (
	"context"
	"time"

	"marketsync/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "marketsync:archive:"

// redisClient defines the operations used by RedisGuard.
type redisClient interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisGuard claims advertisements with SET NX + TTL, shared by every
// process using the same Redis.
type RedisGuard struct {
	client redisClient
	owner  string
}

// NewRedisGuard creates a guard owned by this process.
func NewRedisGuard(client redisClient) (*RedisGuard, error) {
	if client == nil {
		return nil, errors.New("redis client required for archive guard")
	}

	return &RedisGuard{client: client, owner: uuid.NewString()}, nil
}

// Claim implements service.ArchiveGuard. On error the ids claimed so far are
// returned with it.
func (g *RedisGuard) Claim(ctx context.Context, ids []string, ttl time.Duration) ([]string, error) {
	claimed := make([]string, 0, len(ids))
	for _, id := range ids {
		ok, err := g.client.SetNX(ctx, keyPrefix+id, g.owner, ttl).Result()
		if err != nil {
			return claimed, errors.Wrapf(err, "setnx %s", id)
		}
		if ok {
			claimed = append(claimed, id)
		}
	}

	return claimed, nil
}

// Release implements service.ArchiveGuard. Claims taken over by another owner
// after expiry are left alone.
func (g *RedisGuard) Release(ctx context.Context, ids []string) error {
	var errs []error
	for _, id := range ids {
		key := keyPrefix + id
		value, err := g.client.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "read claim owner %s", id))

			continue
		}
		if value != g.owner {
			continue
		}
		if err := g.client.Del(ctx, key).Err(); err != nil {
			errs = append(errs, errors.Wrapf(err, "delete claim %s", id))
		}
	}

	return errors.Join(errs...)
}
