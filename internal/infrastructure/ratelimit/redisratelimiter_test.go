package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	client, _ := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "login:1.2.3.4", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "login:1.2.3.4", 5, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")

	allowed, err = limiter.Allow(ctx, "login:5.6.7.8", 5, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed, "other keys are counted separately")
}

func TestRedisRateLimiter_WindowSlides(t *testing.T) {
	client, _ := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "k", 2, time.Minute)
		require.NoError(t, err)
		require.True(t, allowed)
	}
	allowed, err := limiter.Allow(ctx, "k", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	now = now.Add(61 * time.Second)
	allowed, err = limiter.Allow(ctx, "k", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_ResetAndDisabled(t *testing.T) {
	client, mr := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "k", 1, time.Minute)
	require.NoError(t, err)
	require.True(t, allowed)
	assert.True(t, mr.Exists(keyPrefix+"k"))

	require.NoError(t, limiter.Reset(ctx, "k"))
	assert.False(t, mr.Exists(keyPrefix+"k"))

	allowed, err = limiter.Allow(ctx, "k", 0, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_RedisDown(t *testing.T) {
	client, mr := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	mr.Close()

	_, err := limiter.Allow(context.Background(), "k", 1, time.Minute)
	assert.Error(t, err)
}
