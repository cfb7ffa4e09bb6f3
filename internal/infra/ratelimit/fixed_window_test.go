package ratelimit

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"quill/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newTestLimiter(clock *fakeClock) *FixedWindowLimiter {
	return New(5, 60*time.Second, 1000, WithClock(clock.Now))
}

func TestFixedWindowLimiter_SixthCallInWindowIsLimited(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	limiter := newTestLimiter(clock)

	for i := 1; i <= 5; i++ {
		assert.False(t, limiter.IsLimited("10.0.0.1"), "call %d must pass", i)
		clock.Advance(time.Second)
	}

	assert.True(t, limiter.IsLimited("10.0.0.1"))
	assert.True(t, limiter.IsLimited("10.0.0.1"))
}

func TestFixedWindowLimiter_ResetsAfterWindow(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	limiter := newTestLimiter(clock)

	for range 5 {
		require.False(t, limiter.IsLimited("10.0.0.1"))
	}
	require.True(t, limiter.IsLimited("10.0.0.1"))

	// Exactly at the boundary the window is still current.
	clock.Advance(60 * time.Second)
	assert.True(t, limiter.IsLimited("10.0.0.1"))

	clock.Advance(time.Second)
	assert.False(t, limiter.IsLimited("10.0.0.1"))

	for range 4 {
		assert.False(t, limiter.IsLimited("10.0.0.1"))
	}
	assert.True(t, limiter.IsLimited("10.0.0.1"))
}

func TestFixedWindowLimiter_RejectionDoesNotExtendWindow(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	limiter := newTestLimiter(clock)

	for range 5 {
		require.False(t, limiter.IsLimited("k"))
	}

	// Hammer the key for most of the window; the count stays at the ceiling.
	for range 50 {
		clock.Advance(time.Second)
		assert.True(t, limiter.IsLimited("k"))
	}

	entry, ok := limiter.entries.Get("k")
	require.True(t, ok)
	assert.Equal(t, 5, entry.count)

	clock.Advance(11 * time.Second)
	assert.False(t, limiter.IsLimited("k"))
}

func TestFixedWindowLimiter_KeysAreIndependent(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	limiter := newTestLimiter(clock)

	for range 5 {
		require.False(t, limiter.IsLimited("10.0.0.1"))
	}
	assert.True(t, limiter.IsLimited("10.0.0.1"))
	assert.False(t, limiter.IsLimited("10.0.0.2"))
	assert.Equal(t, 2, limiter.Len())
}

func TestFixedWindowLimiter_ConcurrentCallsDoNotLoseIncrements(t *testing.T) {
	limiter := New(5, time.Minute, 1000)

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
	)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !limiter.IsLimited("203.0.113.9") {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(5), allowed.Load())
}

func TestFixedWindowLimiter_EvictsIdleEntries(t *testing.T) {
	limiter := New(5, 50*time.Millisecond, 1000)

	assert.False(t, limiter.IsLimited("idle"))
	assert.Equal(t, 1, limiter.Len())

	assert.Eventually(t, func() bool {
		return limiter.Len() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestNewFixedWindowLimiter_UsesConfig(t *testing.T) {
	cfg := &config.Config{
		RateLimit: &config.RateLimitConfig{Ceiling: 2, Window: time.Minute, CacheSize: 10},
	}

	limiter := NewFixedWindowLimiter(cfg)

	assert.False(t, limiter.IsLimited("a"))
	assert.False(t, limiter.IsLimited("a"))
	assert.True(t, limiter.IsLimited("a"))
}
