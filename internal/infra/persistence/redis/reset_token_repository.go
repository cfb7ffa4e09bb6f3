package redis

import (
	"context"
	"strconv"
	"time"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const (
	emailKeyPrefix = "reset:email:"
	tokenKeyPrefix = "reset:token:"

	fieldToken     = "token"
	fieldCreatedAt = "created_at"
)

// resetTokenRepository keeps one hash per email plus a token -> email index.
// Keys outlive the token lifetime so expiry is still detected and reported by the caller;
// the redis TTL only bounds how long abandoned tokens occupy memory.
type resetTokenRepository struct {
	client *goredis.Client
	keyTTL time.Duration
}

// NewResetTokenRepository is the constructor for the redis reset token store.
func NewResetTokenRepository(client *goredis.Client, tokenLifetime time.Duration) repository.ResetTokenRepository {
	return &resetTokenRepository{
		client: client,
		keyTTL: 2 * tokenLifetime,
	}
}

// Upsert stores the token, replacing any previous token of the same email.
func (repo *resetTokenRepository) Upsert(ctx context.Context, token *entity.ResetToken) error {
	emailKey := emailKeyPrefix + token.Email

	previous, err := repo.client.HGet(ctx, emailKey, fieldToken).Result()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return domainerrors.NewDatabaseExecuteError(err, "failed to read previous reset token")
	}

	_, err = repo.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		if previous != "" {
			pipe.Del(ctx, tokenKeyPrefix+previous)
		}
		pipe.HSet(ctx, emailKey,
			fieldToken, token.Token,
			fieldCreatedAt, strconv.FormatInt(token.CreatedAt.UnixNano(), 10),
		)
		pipe.Expire(ctx, emailKey, repo.keyTTL)
		pipe.Set(ctx, tokenKeyPrefix+token.Token, token.Email, repo.keyTTL)

		return nil
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert reset token")
	}

	return nil
}

// FindByToken retrieves the record holding the given token value.
func (repo *resetTokenRepository) FindByToken(ctx context.Context, token string) (*entity.ResetToken, error) {
	email, err := repo.client.Get(ctx, tokenKeyPrefix+token).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, repository.ErrResetTokenNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up reset token")
	}

	fields, err := repo.client.HGetAll(ctx, emailKeyPrefix+email).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load reset token record")
	}
	// A dangling index entry whose email has since been issued a new token.
	if fields[fieldToken] != token {
		return nil, repository.ErrResetTokenNotFound
	}

	createdAtNanos, err := strconv.ParseInt(fields[fieldCreatedAt], 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "malformed reset token timestamp")
	}

	return &entity.ResetToken{
		Email:     email,
		Token:     token,
		CreatedAt: time.Unix(0, createdAtNanos),
	}, nil
}

// consumeScript drops the token index and, when the email hash still holds that
// token, the hash too. It returns 1 only for the caller that removed both.
// KEYS[1] email hash, KEYS[2] token index, ARGV[1] token.
var consumeScript = goredis.NewScript(`
local removed = redis.call('DEL', KEYS[2])
if redis.call('HGET', KEYS[1], 'token') ~= ARGV[1] then
	return 0
end
redis.call('DEL', KEYS[1])
return removed
`)

// Consume deletes the record of email only while it still holds token.
func (repo *resetTokenRepository) Consume(ctx context.Context, email, token string) (bool, error) {
	removed, err := consumeScript.Run(ctx, repo.client,
		[]string{emailKeyPrefix + email, tokenKeyPrefix + token},
		token,
	).Int()
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to consume reset token")
	}

	return removed == 1, nil
}
