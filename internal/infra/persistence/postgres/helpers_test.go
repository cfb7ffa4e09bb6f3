package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"quill/internal/domain/entity"
	"quill/internal/infra/persistence/sqlitetest"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	return sqlitetest.NewDB(t)
}

func seedUser(t *testing.T, db *gorm.DB, username string, role entity.Role) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
		Role:         role,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedCategory(t *testing.T, db *gorm.DB, slug string) *entity.Category {
	t.Helper()

	category := &entity.Category{Name: strings.ToUpper(slug), Slug: slug}
	require.NoError(t, NewCategoryRepository(db).Create(context.Background(), category))

	return category
}

func seedPost(t *testing.T, db *gorm.DB, userID, categoryID int64, title string, createdAt time.Time) *entity.Post {
	t.Helper()

	post := &entity.Post{
		Title:      title,
		Content:    "content of " + title,
		UserID:     userID,
		CategoryID: categoryID,
		CreatedAt:  createdAt,
	}
	require.NoError(t, NewPostRepository(db).Create(context.Background(), post))

	return post
}
