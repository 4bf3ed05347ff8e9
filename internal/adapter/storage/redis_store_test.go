package storage

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestRedisCartStore_RoundTrip(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	client.Del(ctx, cartKey)

	store := NewRedisCartStore(client)
	require.NoError(t, store.Save(ctx, testCartItems()))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, testCartItems(), loaded)
}

func TestRedisCartStore_MissingKeyIsEmptyCart(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	client.Del(ctx, cartKey)

	loaded, err := NewRedisCartStore(client).Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestRedisCartStore_CorruptKeyIsEmptyCart(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	require.NoError(t, client.Set(ctx, cartKey, "{{{not json", 0).Err())

	loaded, err := NewRedisCartStore(client).Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)

	client.Del(ctx, cartKey)
}
