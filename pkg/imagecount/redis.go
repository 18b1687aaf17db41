package imagecount

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores the full count mapping as one JSON blob under a single
// key. Suitable when several machines prepare splits against the same
// dataset and should share one scan.
type RedisCache struct {
	client *redis.Client
	key    string
}

// NewRedisCache creates a Redis-backed count cache.
func NewRedisCache(addr, key string) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		key:    key,
	}
}

// Load fetches and parses the blob. A missing key is a miss.
func (c *RedisCache) Load(ctx context.Context) (map[string]int, bool, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var counts map[string]int
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, false, fmt.Errorf("parse count cache key %s: %w", c.key, err)
	}
	return counts, true, nil
}

// Store writes the mapping without expiration: counts only change when the
// dataset does, and then the key should be deleted explicitly.
func (c *RedisCache) Store(ctx context.Context, counts map[string]int) error {
	data, err := json.Marshal(counts)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, data, 0).Err()
}

// Close releases the underlying client.
func (c *RedisCache) Close() error { return c.client.Close() }

// Ensure RedisCache implements Cache.
var _ Cache = (*RedisCache)(nil)
