package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "website:ratelimit"

// Limiter applies a fixed-window counter per scope.
type Limiter interface {
	Allow(ctx context.Context, scope string) (bool, int64, error)
}

type RedisLimiter struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
}

func NewRedisLimiter(client redis.Cmdable, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: int64(limit), window: window}
}

// Allow increments the counter for scope and reports whether it is still within
// the limit. The TTL is set on the first hit of each window.
func (l *RedisLimiter) Allow(ctx context.Context, scope string) (bool, int64, error) {
	if l.limit <= 0 {
		return true, 0, nil
	}

	key := Key(scope)
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, err
	}
	if l.window > 0 && count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, count, err
		}
	}

	return count <= l.limit, count, nil
}

func Key(scope string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, strings.ToLower(strings.TrimSpace(scope)))
}

// Noop never rejects. It is used when Redis is not configured.
type Noop struct{}

func (Noop) Allow(context.Context, string) (bool, int64, error) {
	return true, 0, nil
}
