package postgres

import (
	"context"
	"testing"
	"time"

	"quill/internal/domain/entity"
	"quill/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetTokenRepository_UpsertReplacesPreviousToken(t *testing.T) {
	db := newTestDB(t)
	repo := NewResetTokenRepository(db)
	ctx := context.Background()
	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Upsert(ctx, &entity.ResetToken{Email: "a@example.com", Token: "first", CreatedAt: issued}))
	require.NoError(t, repo.Upsert(ctx, &entity.ResetToken{Email: "a@example.com", Token: "second", CreatedAt: issued.Add(time.Minute)}))

	_, err := repo.FindByToken(ctx, "first")
	assert.ErrorIs(t, err, repository.ErrResetTokenNotFound)

	got, err := repo.FindByToken(ctx, "second")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got.Email)
	assert.True(t, got.CreatedAt.Equal(issued.Add(time.Minute)))

	var count int64
	require.NoError(t, db.Table("password_reset_tokens").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestResetTokenRepository_Consume(t *testing.T) {
	db := newTestDB(t)
	repo := NewResetTokenRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entity.ResetToken{Email: "a@example.com", Token: "tok", CreatedAt: time.Now()}))

	removed, err := repo.Consume(ctx, "a@example.com", "tok")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Consume(ctx, "a@example.com", "tok")
	require.NoError(t, err)
	assert.False(t, removed, "a token is removed at most once")

	_, err = repo.FindByToken(ctx, "tok")
	assert.ErrorIs(t, err, repository.ErrResetTokenNotFound)
}

func TestResetTokenRepository_ConsumeKeepsNewerToken(t *testing.T) {
	db := newTestDB(t)
	repo := NewResetTokenRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entity.ResetToken{Email: "a@example.com", Token: "old", CreatedAt: time.Now()}))
	require.NoError(t, repo.Upsert(ctx, &entity.ResetToken{Email: "a@example.com", Token: "new", CreatedAt: time.Now()}))

	removed, err := repo.Consume(ctx, "a@example.com", "old")
	require.NoError(t, err)
	assert.False(t, removed)

	got, err := repo.FindByToken(ctx, "new")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got.Email)
}
