package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Package-level client shared by the session store and the idempotency
// middleware. Initialized once at startup.
var client *redis.Client

const pingTimeout = 5 * time.Second

// Init connects using a redis:// URL and verifies the connection with a
// ping before anything depends on it.
func Init(url, password string) error {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return err
	}
	if password != "" {
		opts.Password = password
	}
	client = redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return client.Ping(ctx).Err()
}

// SetClient swaps the shared client. Tests use this to point the package at
// a miniredis instance.
func SetClient(c *redis.Client) {
	client = c
}

// GetClient exposes the shared client for callers that need commands beyond
// the wrappers below.
func GetClient() *redis.Client {
	return client
}

// Set writes key with a TTL.
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return client.Set(ctx, key, value, expiration).Err()
}

// Get reads key, returning redis.Nil when it does not exist.
func Get(ctx context.Context, key string) (string, error) {
	return client.Get(ctx, key).Result()
}

// Del removes key.
func Del(ctx context.Context, key string) error {
	return client.Del(ctx, key).Err()
}

// SetNX writes key only when absent, reporting whether the write happened.
// Used as a lightweight lock.
func SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	return client.SetNX(ctx, key, value, expiration).Result()
}
