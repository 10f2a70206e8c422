package rediscache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window counter over Redis INCR, used to throttle
// the admin API. The public redirect path is never rate limited.
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, limit: int64(limit), window: window}
}

// Allow reports whether another request under key fits in the current
// window. The first increment sets the window TTL.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.client.Incr(ctx, "ratelimit:"+key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		l.client.Expire(ctx, "ratelimit:"+key, l.window)
	}
	return count <= l.limit, nil
}

// NewClient connects to Redis at addr and verifies connectivity.
func NewClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
