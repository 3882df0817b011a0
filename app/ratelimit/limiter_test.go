package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, limit int, window time.Duration) (*miniredis.Miniredis, *RedisLimiter) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewRedisLimiter(client, limit, window)
}

func TestRedisLimiterBlocksAfterLimit(t *testing.T) {
	_, limiter := newTestLimiter(t, 2, time.Minute)
	ctx := context.Background()

	for i := 1; i <= 2; i++ {
		allowed, count, err := limiter.Allow(ctx, "contact:10.0.0.1")
		require.NoError(t, err)
		require.True(t, allowed)
		require.EqualValues(t, i, count)
	}

	allowed, count, err := limiter.Allow(ctx, "contact:10.0.0.1")
	require.NoError(t, err)
	require.False(t, allowed)
	require.EqualValues(t, 3, count)

	allowed, _, err = limiter.Allow(ctx, "contact:10.0.0.2")
	require.NoError(t, err)
	require.True(t, allowed, "scopes are counted independently")
}

func TestRedisLimiterWindowExpires(t *testing.T) {
	mr, limiter := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	allowed, _, err := limiter.Allow(ctx, "contact:ip")
	require.NoError(t, err)
	require.True(t, allowed)
	require.Equal(t, time.Minute, mr.TTL(Key("contact:ip")))

	allowed, _, err = limiter.Allow(ctx, "contact:ip")
	require.NoError(t, err)
	require.False(t, allowed)

	mr.FastForward(time.Minute + time.Second)

	allowed, _, err = limiter.Allow(ctx, "contact:ip")
	require.NoError(t, err)
	require.True(t, allowed)
}

func TestRedisLimiterDisabledWithZeroLimit(t *testing.T) {
	mr, limiter := newTestLimiter(t, 0, time.Minute)

	for i := 0; i < 10; i++ {
		allowed, _, err := limiter.Allow(context.Background(), "contact:ip")
		require.NoError(t, err)
		require.True(t, allowed)
	}
	require.False(t, mr.Exists(Key("contact:ip")))
}

func TestRedisLimiterReportsBackendError(t *testing.T) {
	mr, limiter := newTestLimiter(t, 1, time.Minute)
	mr.Close()

	_, _, err := limiter.Allow(context.Background(), "contact:ip")
	require.Error(t, err)
}
