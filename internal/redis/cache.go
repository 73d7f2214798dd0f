// Package redisclient provides the optional Redis-backed response cache for
// the generative-text collaborator. The server runs fine without Redis; a
// nil cache simply disables memoization.
package redisclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cachePrefix = "ai:resp:"

func NewRedisClient(addr, username, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Username:     username,
		Password:     password,
		DB:           0,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		PoolSize:     10,
		MinIdleConns: 1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return rdb, nil
}

// ResponseCache memoizes generative-text responses keyed by prompt hash.
// All methods tolerate a nil receiver, so callers never branch on whether
// caching is configured.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if client == nil {
		return nil
	}
	return &ResponseCache{client: client, ttl: ttl}
}

func (c *ResponseCache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	val, err := c.client.Get(ctx, cachePrefix+key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *ResponseCache) Set(ctx context.Context, key, value string) {
	if c == nil {
		return
	}
	// Best effort; a failed write only costs a future cache miss.
	_ = c.client.Set(ctx, cachePrefix+key, value, c.ttl).Err()
}

var flushScript = redis.NewScript(`
local keys = redis.call("KEYS", ARGV[1])
for i, k in ipairs(keys) do
  redis.call("DEL", k)
end
return #keys
`)

// Flush drops every cached response and returns how many were removed.
func (c *ResponseCache) Flush(ctx context.Context) (int, error) {
	if c == nil {
		return 0, nil
	}
	n, err := flushScript.Run(ctx, c.client, []string{}, cachePrefix+"*").Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("flush response cache: %w", err)
	}
	return n, nil
}
