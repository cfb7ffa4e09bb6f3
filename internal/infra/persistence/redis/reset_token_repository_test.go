package redis

import (
	"context"
	"testing"
	"time"

	"quill/internal/domain/entity"
	"quill/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (repository.ResetTokenRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewResetTokenRepository(client, time.Hour), mr
}

func TestResetTokenRepository_UpsertAndFind(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()
	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Upsert(ctx, &entity.ResetToken{Email: "a@example.com", Token: "tok1", CreatedAt: issued}))

	got, err := repo.FindByToken(ctx, "tok1")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got.Email)
	assert.True(t, got.CreatedAt.Equal(issued))

	assert.Equal(t, 2*time.Hour, mr.TTL(tokenKeyPrefix+"tok1"))
	assert.Equal(t, 2*time.Hour, mr.TTL(emailKeyPrefix+"a@example.com"))
}

func TestResetTokenRepository_UpsertReplacesPreviousToken(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entity.ResetToken{Email: "a@example.com", Token: "tok1", CreatedAt: time.Now()}))
	require.NoError(t, repo.Upsert(ctx, &entity.ResetToken{Email: "a@example.com", Token: "tok2", CreatedAt: time.Now()}))

	_, err := repo.FindByToken(ctx, "tok1")
	assert.ErrorIs(t, err, repository.ErrResetTokenNotFound)
	assert.False(t, mr.Exists(tokenKeyPrefix+"tok1"))

	got, err := repo.FindByToken(ctx, "tok2")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got.Email)
}

func TestResetTokenRepository_Consume(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entity.ResetToken{Email: "a@example.com", Token: "tok1", CreatedAt: time.Now()}))

	removed, err := repo.Consume(ctx, "a@example.com", "tok1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Consume(ctx, "a@example.com", "tok1")
	require.NoError(t, err)
	assert.False(t, removed, "a token is removed at most once")

	removed, err = repo.Consume(ctx, "missing@example.com", "nope")
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = repo.FindByToken(ctx, "tok1")
	assert.ErrorIs(t, err, repository.ErrResetTokenNotFound)
	assert.Empty(t, mr.Keys())
}

func TestResetTokenRepository_ConsumeKeepsNewerToken(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entity.ResetToken{Email: "a@example.com", Token: "old", CreatedAt: time.Now()}))
	require.NoError(t, repo.Upsert(ctx, &entity.ResetToken{Email: "a@example.com", Token: "new", CreatedAt: time.Now()}))

	removed, err := repo.Consume(ctx, "a@example.com", "old")
	require.NoError(t, err)
	assert.False(t, removed)

	got, err := repo.FindByToken(ctx, "new")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got.Email)
	assert.True(t, mr.Exists(emailKeyPrefix+"a@example.com"))
}

func TestResetTokenRepository_UnknownToken(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.FindByToken(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrResetTokenNotFound)
}
