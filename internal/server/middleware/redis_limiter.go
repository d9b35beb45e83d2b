package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter фиксированное окно на счетчиках Redis, общее для всех реплик
type RedisLimiter struct {
	client redis.Cmdable
	prefix string
	rate   int
	window time.Duration
}

// NewRedisLimiter создает лимитер; ключи хранятся как prefix+key
func NewRedisLimiter(client redis.Cmdable, prefix string, rate int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		rate:   rate,
		window: window,
	}
}

// Allow увеличивает счетчик окна и сравнивает его с лимитом
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	k := l.prefix + key

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pttl := pipe.PTTL(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("failed to count request: %w", err)
	}

	ttl := pttl.Val()
	// ключ без срока: первый запрос окна
	if ttl < 0 {
		if err := l.client.PExpire(ctx, k, l.window).Err(); err != nil {
			return false, 0, fmt.Errorf("failed to set window expiry: %w", err)
		}
		ttl = l.window
	}

	if incr.Val() > int64(l.rate) {
		return false, ttl, nil
	}
	return true, 0, nil
}
