package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterWindow(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 2)
	defer rl.Close()

	now := time.Now()
	rl.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := rl.Allow(ctx, "a@x.com")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, _ := rl.Allow(ctx, "a@x.com")
	assert.False(t, ok, "third attempt in window")

	ok, _ = rl.Allow(ctx, "b@x.com")
	assert.True(t, ok, "keys are independent")

	now = now.Add(time.Minute + time.Second)
	ok, _ = rl.Allow(ctx, "a@x.com")
	assert.True(t, ok, "window has passed")
}

func TestRateLimiterCloseIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 1)
	assert.NoError(t, rl.Close())
	assert.NoError(t, rl.Close())
}
