package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const limiterPrefix = "contact:rl:"

// RateLimiter throttles contact submissions per client key using a Redis
// counter with a fixed expiry window. Shared across instances, unlike the
// in-process fallback.
type RateLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

// NewRateLimiter creates a RateLimiter allowing max submissions per window.
func NewRateLimiter(client *redis.Client, max int, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, max: int64(max), window: window}
}

// Allow consumes one slot for key and reports whether the submission may
// proceed.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := limiterPrefix + key
	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= l.max, nil
}
