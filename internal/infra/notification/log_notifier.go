// Package notification delivers out-of-band messages to account owners.
package notification

import (
	"context"
	"log/slog"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/service"
)

// logNotifier writes reset tokens to the structured log. It stands in for mail
// delivery, so the log sink must be treated as holding live credentials.
type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates the log-backed reset notifier.
func NewLogNotifier(logger *slog.Logger) service.ResetNotifier {
	return &logNotifier{logger: logger.With(slog.String("component", "reset_notifier"))}
}

// NotifyResetToken records the token for the email owner.
func (n *logNotifier) NotifyResetToken(ctx context.Context, email, token string) error {
	deliverycontext.LoggerFrom(ctx, n.logger).Info("Password reset token issued",
		slog.String("email", email),
		slog.String("token", token),
	)

	return nil
}
