package service

// RateLimiter decides whether a client has exhausted its request budget.
// Implementations must be safe for concurrent use and never return an error.
type RateLimiter interface {
	// IsLimited records one request for key and reports whether it must be rejected.
	IsLimited(key string) bool
}
