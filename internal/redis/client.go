package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client is an optional read cache for catalog list endpoints. The
// server runs identically without it; a cache miss or a Redis failure
// just falls through to the database.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

func Initialize(redisURL string, ttl time.Duration) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb, ttl: ttl}, nil
}

// GetList returns the cached JSON body for a collection, if present.
func (c *Client) GetList(collection string) ([]byte, bool) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "list:"+collection).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

// SetList caches the list result of a collection with the configured TTL.
func (c *Client) SetList(collection string, value interface{}) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal list for cache: %w", err)
	}

	return c.rdb.Set(ctx, "list:"+collection, jsonData, c.ttl).Err()
}

// Invalidate drops the cached list of a collection after a mutation.
func (c *Client) Invalidate(collection string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "list:"+collection).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
