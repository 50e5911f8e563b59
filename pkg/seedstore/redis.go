package seedstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	redispkg "github.com/dmitrymomot/attestkit/pkg/redis"
)

// DefaultRedisKey is the key used when none is configured.
const DefaultRedisKey = "attest:seed"

// RedisBackend shares one seed between replicas. The value never expires.
type RedisBackend struct {
	client redis.UniversalClient
	key    string
}

// NewRedisBackend stores the seed under key, DefaultRedisKey when empty.
func NewRedisBackend(client redis.UniversalClient, key string) *RedisBackend {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisBackend{client: client, key: key}
}

// Key returns the redis key holding the seed.
func (b *RedisBackend) Key() string { return b.key }

// Read returns the stored value, or ErrNotFound when the key is absent.
func (b *RedisBackend) Read(ctx context.Context) ([]byte, error) {
	data, err := b.client.Get(ctx, b.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Join(ErrReadFailed, err)
	}
	return data, nil
}

// Write sets the key without expiry.
func (b *RedisBackend) Write(ctx context.Context, data []byte) error {
	if err := b.client.Set(ctx, b.key, data, 0).Err(); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}

// Check pings the server.
func (b *RedisBackend) Check(ctx context.Context) error {
	return redispkg.Healthcheck(b.client)(ctx)
}
