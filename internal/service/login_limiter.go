package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter caps login attempts per username inside a rolling window.
type LoginLimiter interface {
	Allow(ctx context.Context, username string) (bool, error)
}

type redisLoginLimiter struct {
	client *redis.Client
	window time.Duration
	max    int64
}

// NewRedisLoginLimiter returns a redis-backed limiter counting attempts per
// username with a window-scoped key.
func NewRedisLoginLimiter(client *redis.Client, window time.Duration, maxAttempts int) LoginLimiter {
	if window <= 0 {
		window = time.Minute
	}
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	return &redisLoginLimiter{client: client, window: window, max: int64(maxAttempts)}
}

func (l *redisLoginLimiter) Allow(ctx context.Context, username string) (bool, error) {
	key := "login_attempts:" + username

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return true, err
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return true, err
		}
	}
	return count <= l.max, nil
}
