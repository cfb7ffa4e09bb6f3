package postgres

import (
	"context"
	"testing"
	"time"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice", entity.RoleUser)
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
	assert.Equal(t, entity.RoleUser, byID.Role)

	byName, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	seedUser(t, db, "alice", entity.RoleUser)

	err := repo.Create(context.Background(), &entity.User{
		Username:     "alice",
		Email:        "other@example.com",
		PasswordHash: "hash",
	})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "USER_ALREADY_EXISTS", appErr.ErrorCode())
}

func TestUserRepository_UpdateAndPassword(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "alice", entity.RoleUser)

	user.Username = "alicia"
	require.NoError(t, repo.Update(ctx, user))
	require.NoError(t, repo.UpdatePasswordHash(ctx, user.ID, "new-hash"))

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alicia", got.Username)
	assert.Equal(t, "new-hash", got.PasswordHash)

	assert.ErrorIs(t, repo.UpdatePasswordHash(ctx, 999, "x"), repository.ErrUserNotFound)
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice", entity.RoleUser)
	category := seedCategory(t, db, "golang")
	post := seedPost(t, db, user.ID, category.ID, "hello", time.Time{})

	deleted, err := repo.Delete(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = NewPostRepository(db).FindByID(ctx, post.ID)
	assert.ErrorIs(t, err, repository.ErrPostNotFound)

	deleted, err = repo.Delete(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestUserRepository_ListRejectsUnknownRole(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	seedUser(t, db, "alice", entity.RoleUser)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)

	require.NoError(t, db.Exec("UPDATE users SET role = 'root'").Error)
	_, err = repo.List(context.Background())
	assert.ErrorIs(t, err, entity.ErrInvalidRole)
}
