package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fivesolo/site-api/pkg/logging"
)

// RedisLimiter is a fixed-window per-key limiter backed by Redis, for
// deployments running more than one API replica.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	logger *logging.Logger
}

// NewRedisLimiter creates a limiter allowing limit requests per window per key.
func NewRedisLimiter(client *redis.Client, limit int, window time.Duration, logger *logging.Logger) *RedisLimiter {
	if logger == nil {
		logger = logging.Default()
	}
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
		logger: logger,
	}
}

// Allow increments the key's window counter and checks it against the limit.
// Redis errors fail open: a broken limiter backend must not take the contact
// form down with it.
func (rl *RedisLimiter) Allow(key string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	redisKey := "ratelimit:" + key
	count, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		rl.logger.Warn("rate limiter redis error; allowing request", "error", err)
		return true
	}
	if count == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.window).Err(); err != nil {
			rl.logger.Warn("rate limiter expire failed", "error", err)
		}
	}
	return count <= int64(rl.limit)
}

var _ Limiter = (*RedisLimiter)(nil)
var _ Limiter = (*TokenBucketLimiter)(nil)
