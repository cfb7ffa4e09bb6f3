package repository

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrPostNotFound is returned when a post does not exist.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Post, error)

	// List returns one page of posts, newest first, with the total row count.
	List(ctx context.Context, limit, offset int) ([]*entity.Post, int64, error)

	ListByCategorySlug(ctx context.Context, slug string) ([]*entity.Post, error)
	Create(ctx context.Context, post *entity.Post) error
	Update(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id int64) (int64, error)
}
