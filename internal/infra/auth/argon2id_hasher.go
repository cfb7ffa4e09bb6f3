package auth

import (
	"context"
	"log/slog"

	"quill/config"
	deliverycontext "quill/internal/delivery/context"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/service"

	"github.com/alexedwards/argon2id"
	"github.com/pkg/errors"
	"golang.org/x/sync/semaphore"
)

// argon2idHasher hashes passwords with argon2id. At most `workers` hashes run
// concurrently; the rest wait for a slot so login bursts cannot take every CPU.
type argon2idHasher struct {
	params *argon2id.Params
	slots  *semaphore.Weighted
	logger *slog.Logger
}

// NewArgon2idHasher builds the hasher from the auth section of the config.
func NewArgon2idHasher(cfg *config.Config, logger *slog.Logger) service.PasswordHasher {
	params := *argon2id.DefaultParams
	workers := 1

	if cfg.Auth != nil {
		applyArgon2Config(&params, cfg.Auth.Argon2)
		if cfg.Auth.HashWorkers > 0 {
			workers = cfg.Auth.HashWorkers
		}
	}

	return &argon2idHasher{
		params: &params,
		slots:  semaphore.NewWeighted(int64(workers)),
		logger: logger,
	}
}

func applyArgon2Config(params *argon2id.Params, cfg config.Argon2Config) {
	if cfg.Memory > 0 {
		params.Memory = cfg.Memory
	}
	if cfg.Iterations > 0 {
		params.Iterations = cfg.Iterations
	}
	if cfg.Parallelism > 0 {
		params.Parallelism = cfg.Parallelism
	}
	if cfg.SaltLength > 0 {
		params.SaltLength = cfg.SaltLength
	}
	if cfg.KeyLength > 0 {
		params.KeyLength = cfg.KeyLength
	}
}

// Hash generates an argon2id PHC string with a fresh random salt.
func (h *argon2idHasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.slots.Acquire(ctx, 1); err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, "waiting for hash worker: "+err.Error())
	}
	defer h.slots.Release(1)

	hash, err := argon2id.CreateHash(password, h.params)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return hash, nil
}

// Check compares password against hash in constant time.
func (h *argon2idHasher) Check(ctx context.Context, password, hash string) bool {
	if err := h.slots.Acquire(ctx, 1); err != nil {
		// Reported to the caller as a mismatch; the log keeps it apart from a wrong password.
		deliverycontext.LoggerFrom(ctx, h.logger).Warn("Hash worker unavailable, password check skipped", slog.Any("error", err))

		return false
	}
	defer h.slots.Release(1)

	match, err := argon2id.ComparePasswordAndHash(password, hash)
	if err != nil {
		deliverycontext.LoggerFrom(ctx, h.logger).Error("Stored password hash is malformed", slog.Any("error", err))

		return false
	}

	return match
}
