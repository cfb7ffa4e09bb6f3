package postgres

import (
	"context"
	"testing"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_CreateFindList(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	golang := seedCategory(t, db, "golang")
	seedCategory(t, db, "c")

	got, err := repo.FindBySlug(ctx, "golang")
	require.NoError(t, err)
	assert.Equal(t, golang.ID, got.ID)

	got, err = repo.FindByID(ctx, golang.ID)
	require.NoError(t, err)
	assert.Equal(t, "golang", got.Slug)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "c", all[0].Slug)

	_, err = repo.FindBySlug(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestCategoryRepository_DuplicateSlug(t *testing.T) {
	db := newTestDB(t)
	seedCategory(t, db, "golang")

	err := NewCategoryRepository(db).Create(context.Background(), &entity.Category{Name: "Go", Slug: "golang"})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)
}
