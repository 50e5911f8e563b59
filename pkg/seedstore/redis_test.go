package seedstore_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/attestkit/pkg/seedstore"
)

func redisClient(t *testing.T) goredis.UniversalClient {
	t.Helper()
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	opts, err := goredis.ParseURL(url)
	require.NoError(t, err)
	client := goredis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisStore_SaveLoad(t *testing.T) {
	client := redisClient(t)
	ctx := context.Background()
	key := "attest:test:" + uuid.NewString()
	t.Cleanup(func() { client.Del(context.Background(), key) })

	store := seedstore.New(seedstore.NewRedisBackend(client, key))

	_, err := store.Load(ctx)
	require.ErrorIs(t, err, seedstore.ErrNotFound)

	require.NoError(t, store.Save(ctx, testSeed))
	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, testSeed, got)

	assert.NoError(t, store.Check(ctx))
}

func TestRedisBackend_DefaultKey(t *testing.T) {
	t.Parallel()
	b := seedstore.NewRedisBackend(nil, "")
	assert.Equal(t, seedstore.DefaultRedisKey, b.Key())
}
