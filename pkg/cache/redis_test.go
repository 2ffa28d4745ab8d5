package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a test Redis client using miniredis
func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	redisClient := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	client := &Client{
		Redis: redisClient,
	}

	return client, mr
}

func TestClient_SetGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	err := client.Set(ctx, "projects:actor:1", "payload", 1*time.Hour)
	require.NoError(t, err)

	val, err := client.Get(ctx, "projects:actor:1")
	require.NoError(t, err)
	assert.Equal(t, "payload", val)
}

func TestClient_Delete(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "projects:actor:1", "a", 1*time.Hour)
	_ = client.Set(ctx, "projects:actor:2", "b", 1*time.Hour)

	err := client.Delete(ctx, "projects:actor:1")
	require.NoError(t, err)

	_, err = client.Get(ctx, "projects:actor:1")
	assert.Error(t, err) // redis.Nil

	val, err := client.Get(ctx, "projects:actor:2")
	require.NoError(t, err)
	assert.Equal(t, "b", val)
}

func TestClient_DeletePattern(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "projects:actor:1", "a", 1*time.Hour)
	_ = client.Set(ctx, "projects:actor:2", "b", 1*time.Hour)
	_ = client.Set(ctx, "projects:actor:3", "c", 1*time.Hour)
	_ = client.Set(ctx, "leads:project:7", "d", 1*time.Hour)

	err := client.DeletePattern(ctx, "projects:*")
	require.NoError(t, err)

	_, err = client.Get(ctx, "projects:actor:1")
	assert.Error(t, err)
	_, err = client.Get(ctx, "projects:actor:2")
	assert.Error(t, err)
	_, err = client.Get(ctx, "projects:actor:3")
	assert.Error(t, err)

	// Keys outside the pattern survive the sweep.
	val, err := client.Get(ctx, "leads:project:7")
	require.NoError(t, err)
	assert.Equal(t, "d", val)
}

func TestClient_Exists(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	exists, err := client.Exists(ctx, "projects:nonexistent")
	require.NoError(t, err)
	assert.False(t, exists)

	_ = client.Set(ctx, "projects:actor:1", "a", 1*time.Hour)

	exists, err = client.Exists(ctx, "projects:actor:1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestClient_TTL(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "projects:actor:1", "a", 10*time.Second)

	ttl, err := client.TTL(ctx, "projects:actor:1")
	require.NoError(t, err)
	assert.Greater(t, ttl.Seconds(), 9.0)
	assert.LessOrEqual(t, ttl.Seconds(), 10.0)
}
