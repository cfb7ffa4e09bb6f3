package entity

import "time"

// ResetToken is the single outstanding password reset token of an email.
type ResetToken struct {
	Email     string
	Token     string
	CreatedAt time.Time
}

// IsExpired reports whether the token is older than ttl at now.
func (t *ResetToken) IsExpired(now time.Time, ttl time.Duration) bool {
	return now.Sub(t.CreatedAt) > ttl
}
