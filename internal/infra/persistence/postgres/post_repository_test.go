package postgres

import (
	"context"
	"testing"
	"time"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_ListPagesNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice", entity.RoleUser)
	category := seedCategory(t, db, "golang")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		seedPost(t, db, user.ID, category.ID, title, base.Add(time.Duration(i)*time.Hour))
	}

	page, total, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 2)
	assert.Equal(t, "third", page[0].Title)
	assert.Equal(t, "second", page[1].Title)

	page, _, err = repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "first", page[0].Title)
}

func TestPostRepository_ListByCategorySlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	user := seedUser(t, db, "alice", entity.RoleUser)
	golang := seedCategory(t, db, "golang")
	rust := seedCategory(t, db, "rust")
	seedPost(t, db, user.ID, golang.ID, "goroutines", time.Time{})
	seedPost(t, db, user.ID, rust.ID, "borrowck", time.Time{})

	posts, err := repo.ListByCategorySlug(context.Background(), "golang")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "goroutines", posts[0].Title)
}

func TestPostRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice", entity.RoleUser)
	category := seedCategory(t, db, "golang")
	post := seedPost(t, db, user.ID, category.ID, "hello", time.Time{})

	post.Title = "hello again"
	require.NoError(t, repo.Update(ctx, post))

	got, err := repo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello again", got.Title)
	assert.Equal(t, user.ID, got.OwnerID())

	deleted, err := repo.Delete(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	assert.ErrorIs(t, repo.Update(ctx, post), repository.ErrPostNotFound)
}

func TestPostRepository_CreateWithMissingCategory(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice", entity.RoleUser)

	err := NewPostRepository(db).Create(context.Background(), &entity.Post{
		Title:      "orphan",
		Content:    "content",
		UserID:     user.ID,
		CategoryID: 404,
	})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}
