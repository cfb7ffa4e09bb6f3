// Package ratelimit provides the in-memory request limiter used in front of
// unauthenticated auth endpoints.
package ratelimit

import (
	"sync"
	"time"

	"quill/config"
	"quill/internal/domain/service"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// window is the counter of one client inside the current fixed window.
type window struct {
	count int
	start time.Time
}

// FixedWindowLimiter counts requests per key in fixed windows. A window resets
// wholesale once it is older than the window duration, so a client may burst up
// to twice the ceiling across a boundary.
type FixedWindowLimiter struct {
	mu      sync.Mutex
	entries *expirable.LRU[string, window]
	ceiling int
	window  time.Duration
	now     func() time.Time
}

// Option customises a FixedWindowLimiter.
type Option func(*FixedWindowLimiter)

// WithClock replaces the wall clock, used by tests to step across windows.
func WithClock(now func() time.Time) Option {
	return func(l *FixedWindowLimiter) {
		l.now = now
	}
}

// New creates a limiter allowing ceiling requests per window for each key.
// Idle entries are evicted once the window elapses; cacheSize bounds memory.
func New(ceiling int, windowDuration time.Duration, cacheSize int, opts ...Option) *FixedWindowLimiter {
	l := &FixedWindowLimiter{
		entries: expirable.NewLRU[string, window](cacheSize, nil, windowDuration),
		ceiling: ceiling,
		window:  windowDuration,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// NewFixedWindowLimiter is the fx constructor reading the rateLimit config section.
func NewFixedWindowLimiter(cfg *config.Config) service.RateLimiter {
	return New(cfg.RateLimit.Ceiling, cfg.RateLimit.Window, cfg.RateLimit.CacheSize)
}

// IsLimited records a request for key and reports whether it exceeds the ceiling.
// A rejected request does not increment the stored count.
func (l *FixedWindowLimiter) IsLimited(key string) bool {
	now := l.now()

	// The LRU is safe for concurrent use on its own, but the
	// read-increment-write below must not interleave for one key.
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries.Get(key)
	if !ok || now.Sub(entry.start) > l.window {
		l.entries.Add(key, window{count: 1, start: now})

		return false
	}

	if entry.count < l.ceiling {
		entry.count++
		l.entries.Add(key, entry)

		return false
	}

	return true
}

// Len reports the number of tracked clients.
func (l *FixedWindowLimiter) Len() int {
	return l.entries.Len()
}
