package ratelimit

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter bounds how often an action may happen per key within a window.
type Limiter interface {
	// Allow reports whether one more attempt for key is permitted
	Allow(ctx context.Context, key string) bool
}

// redisLimiter counts attempts in Redis so the limit holds across replicas.
type redisLimiter struct {
	client   *redis.Client
	prefix   string
	window   time.Duration
	maxTries int
}

// NewRedisLimiter creates a Limiter backed by the given Redis client.
func NewRedisLimiter(client *redis.Client, prefix string, window time.Duration, maxTries int) Limiter {
	return &redisLimiter{
		client:   client,
		prefix:   prefix,
		window:   window,
		maxTries: maxTries,
	}
}

func (l *redisLimiter) Allow(ctx context.Context, key string) bool {
	redisKey := l.prefix + ":" + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		// Fail open: a broken limiter should not lock everyone out.
		log.Printf("[WARN] rate limiter redis error: %v", err)
		return true
	}
	if count == 1 {
		l.client.Expire(ctx, redisKey, l.window)
	}
	return count <= int64(l.maxTries)
}

// memoryLimiter is the single-process fallback used when Redis is not configured.
type memoryLimiter struct {
	mu       sync.Mutex
	attempts map[string]int
	firstTry map[string]time.Time
	window   time.Duration
	maxTries int
}

// NewMemoryLimiter creates an in-process Limiter.
func NewMemoryLimiter(window time.Duration, maxTries int) Limiter {
	return &memoryLimiter{
		attempts: make(map[string]int),
		firstTry: make(map[string]time.Time),
		window:   window,
		maxTries: maxTries,
	}
}

func (l *memoryLimiter) Allow(_ context.Context, key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	first, exists := l.firstTry[key]

	if !exists || now.Sub(first) > l.window {
		l.attempts[key] = 1
		l.firstTry[key] = now
		return true
	}

	l.attempts[key]++
	return l.attempts[key] <= l.maxTries
}

// NewLoginLimiter picks the Redis limiter when a URL is configured and the
// in-memory one otherwise.
func NewLoginLimiter(redisURL string, window time.Duration, maxTries int) Limiter {
	if redisURL == "" {
		return NewMemoryLimiter(window, maxTries)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("[WARN] invalid REDIS_URL, falling back to in-memory rate limiting: %v", err)
		return NewMemoryLimiter(window, maxTries)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("[WARN] redis unreachable, falling back to in-memory rate limiting: %v", err)
		return NewMemoryLimiter(window, maxTries)
	}

	return NewRedisLimiter(client, "login", window, maxTries)
}
