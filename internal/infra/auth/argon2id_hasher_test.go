package auth

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"quill/config"
	domainerrors "quill/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cheap parameters keep the suite fast; the encoding is identical.
func newTestHasher(workers int) *argon2idHasher {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			HashWorkers: workers,
			Argon2: config.Argon2Config{
				Memory:      8 * 1024,
				Iterations:  1,
				Parallelism: 1,
				SaltLength:  16,
				KeyLength:   32,
			},
		},
	}

	return NewArgon2idHasher(cfg, newDiscardLogger()).(*argon2idHasher)
}

func TestArgon2idHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher(2)
	ctx := context.Background()

	secrets := []string{"StrongPass123!", "a", "пароль-unicode", strings.Repeat("x", 256), ""}

	for _, secret := range secrets {
		hash, err := hasher.Hash(ctx, secret)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
		assert.NotEqual(t, secret, hash)

		assert.True(t, hasher.Check(ctx, secret, hash), "secret %q must verify", secret)
		assert.False(t, hasher.Check(ctx, secret+"x", hash), "altered secret must not verify")
	}
}

func TestArgon2idHasher_SaltsDiffer(t *testing.T) {
	hasher := newTestHasher(1)
	ctx := context.Background()

	first, err := hasher.Hash(ctx, "same-password")
	require.NoError(t, err)
	second, err := hasher.Hash(ctx, "same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check(ctx, "same-password", first))
	assert.True(t, hasher.Check(ctx, "same-password", second))
}

func TestArgon2idHasher_MalformedHashIsMismatch(t *testing.T) {
	hasher := newTestHasher(1)
	ctx := context.Background()

	malformed := []string{
		"",
		"invalid_hash",
		"$2a$10$abcdefghijklmnopqrstuv",
		"$argon2id$v=19$m=abc,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$!!notbase64!!$aGFzaA",
	}

	for _, hash := range malformed {
		assert.False(t, hasher.Check(ctx, "password", hash), "hash %q", hash)
	}
}

func TestArgon2idHasher_CancelledContext(t *testing.T) {
	hasher := newTestHasher(1)

	// Occupy the only slot so the next call has to wait.
	require.NoError(t, hasher.slots.Acquire(context.Background(), 1))
	defer hasher.slots.Release(1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := hasher.Hash(ctx, "password")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))

	assert.False(t, hasher.Check(ctx, "password", "$argon2id$v=19$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g"))
}

func TestArgon2idHasher_CheckLogsUnavailableWorker(t *testing.T) {
	hasher := newTestHasher(1)
	var buf bytes.Buffer
	hasher.logger = slog.New(slog.NewJSONHandler(&buf, nil))

	require.NoError(t, hasher.slots.Acquire(context.Background(), 1))
	defer hasher.slots.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, hasher.Check(ctx, "password", "$argon2id$v=19$m=8192,t=1,p=1$c2FsdA$aGFzaA"))
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), "Hash worker unavailable")
	assert.Contains(t, buf.String(), "context canceled")
}

func TestArgon2idHasher_ConcurrentUse(t *testing.T) {
	hasher := newTestHasher(2)
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]bool, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			hash, err := hasher.Hash(ctx, "concurrent")
			if err != nil {
				return
			}
			results[i] = hasher.Check(ctx, "concurrent", hash)
		}(i)
	}
	wg.Wait()

	for i, ok := range results {
		assert.True(t, ok, "worker %d", i)
	}
}
