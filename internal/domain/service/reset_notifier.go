package service

import "context"

// ResetNotifier hands a freshly issued password reset token to its owner.
type ResetNotifier interface {
	NotifyResetToken(ctx context.Context, email, token string) error
}
