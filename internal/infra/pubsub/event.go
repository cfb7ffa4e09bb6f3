// Package pubsub publishes password reset notifications to the service that
// mails them, either through Google Pub/Sub or a local push endpoint.
package pubsub

import (
	"context"
	"time"

	deliverycontext "quill/internal/delivery/context"
)

// PasswordResetEvent is the message body consumed by the mail sender.
type PasswordResetEvent struct {
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	RequestID string    `json:"request_id,omitempty"`
	IssuedAt  time.Time `json:"issued_at"`
}

func newPasswordResetEvent(ctx context.Context, email, token string) *PasswordResetEvent {
	return &PasswordResetEvent{
		Email:     email,
		Token:     token,
		RequestID: deliverycontext.RequestIDFromContext(ctx),
		IssuedAt:  time.Now().UTC(),
	}
}

// attributes are the message attributes used for filtering and tracing.
func (e *PasswordResetEvent) attributes() map[string]string {
	attributes := map[string]string{
		"event_type": "password_reset",
	}
	if e.RequestID != "" {
		attributes["request_id"] = e.RequestID
	}

	return attributes
}
