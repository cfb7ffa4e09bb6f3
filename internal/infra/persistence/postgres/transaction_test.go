package postgres

import (
	"context"
	"testing"

	"quill/internal/domain/entity"
	"quill/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.UserRepo().Create(ctx, &entity.User{Username: "alice", Email: "a@example.com", PasswordHash: "h"}); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = NewUserRepository(db).FindByUsername(ctx, "alice")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTransactionManager_Commits(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		user := &entity.User{Username: "alice", Email: "a@example.com", PasswordHash: "h"}
		if err := factory.UserRepo().Create(ctx, user); err != nil {
			return err
		}
		category := &entity.Category{Name: "Go", Slug: "golang"}
		if err := factory.CategoryRepo().Create(ctx, category); err != nil {
			return err
		}

		return factory.PostRepo().Create(ctx, &entity.Post{Title: "t", Content: "c", UserID: user.ID, CategoryID: category.ID})
	})
	require.NoError(t, err)

	posts, total, err := NewPostRepository(db).List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, posts, 1)
}
