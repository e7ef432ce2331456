// README: Redis-backed cache of recent estimates per route.
package compare

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"farecast/internal/modules/fare"
)

// EstimateCache keeps the latest estimate per route for short-trip
// lookups. Write failures are logged by callers, never fatal; the
// snapshot store, not this cache, is what choose settles against.
type EstimateCache interface {
	Save(ctx context.Context, estimate fare.Estimate) error
	Find(ctx context.Context, origin, destination string) (fare.Estimate, bool, error)
}

type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func (c *RedisCache) Save(ctx context.Context, estimate fare.Estimate) error {
	payload, err := json.Marshal(estimate)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, routeKey(estimate.Origin, estimate.Destination), payload, c.ttl).Err()
}

func (c *RedisCache) Find(ctx context.Context, origin, destination string) (fare.Estimate, bool, error) {
	val, err := c.rdb.Get(ctx, routeKey(origin, destination)).Result()
	if err == redis.Nil {
		return fare.Estimate{}, false, nil
	}
	if err != nil {
		return fare.Estimate{}, false, err
	}
	var estimate fare.Estimate
	if err := json.Unmarshal([]byte(val), &estimate); err != nil {
		return fare.Estimate{}, false, err
	}
	return estimate, true, nil
}

func routeKey(origin, destination string) string {
	return "compare:estimate:" + strings.ToLower(origin) + "->" + strings.ToLower(destination)
}
