package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryLimiter_BlocksAfterMaxTries(t *testing.T) {
	limiter := NewMemoryLimiter(time.Minute, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow(ctx, "a@x.com"), "attempt %d should pass", i+1)
	}
	assert.False(t, limiter.Allow(ctx, "a@x.com"))

	// Other keys are unaffected
	assert.True(t, limiter.Allow(ctx, "b@x.com"))
}

func TestMemoryLimiter_WindowResets(t *testing.T) {
	limiter := NewMemoryLimiter(20*time.Millisecond, 1)
	ctx := context.Background()

	assert.True(t, limiter.Allow(ctx, "a@x.com"))
	assert.False(t, limiter.Allow(ctx, "a@x.com"))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, limiter.Allow(ctx, "a@x.com"))
}

func TestNewLoginLimiter_NoRedisFallsBackToMemory(t *testing.T) {
	limiter := NewLoginLimiter("", time.Minute, 2)

	ctx := context.Background()
	assert.True(t, limiter.Allow(ctx, "a@x.com"))
	assert.True(t, limiter.Allow(ctx, "a@x.com"))
	assert.False(t, limiter.Allow(ctx, "a@x.com"))
}

func TestNewLoginLimiter_BadURLFallsBackToMemory(t *testing.T) {
	limiter := NewLoginLimiter("not-a-url", time.Minute, 1)

	ctx := context.Background()
	assert.True(t, limiter.Allow(ctx, "a@x.com"))
	assert.False(t, limiter.Allow(ctx, "a@x.com"))
}
