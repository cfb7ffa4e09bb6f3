package repository

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrResetTokenNotFound is returned when no reset token matches the lookup.
var ErrResetTokenNotFound = errors.New("reset token not found")

// ResetTokenRepository stores at most one outstanding reset token per email.
// Expiry is a business rule of the caller; stores keep tokens until deleted.
type ResetTokenRepository interface {
	// Upsert stores the token, replacing any previous token of the same email.
	Upsert(ctx context.Context, token *entity.ResetToken) error

	// FindByToken retrieves the record holding the given token value.
	FindByToken(ctx context.Context, token string) (*entity.ResetToken, error)

	// Consume deletes the record of email only while it still holds token, and
	// reports whether this call removed it. At most one caller wins per token.
	Consume(ctx context.Context, email, token string) (bool, error)
}
