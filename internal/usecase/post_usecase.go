package usecase

import (
	"context"

	"quill/internal/domain/entity"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// CreatePostInput defines the data required to publish a post.
type CreatePostInput struct {
	Title      string
	Content    string
	CategoryID int64
}

// UpdatePostInput holds the optional post fields; nil leaves a field untouched.
type UpdatePostInput struct {
	Title      *string
	Content    *string
	CategoryID *int64
}

// ListPostsInput selects one page. Non-positive values fall back to the defaults.
type ListPostsInput struct {
	Page    int
	PerPage int
}

// PostPage is one page of posts.
type PostPage struct {
	Items      []*entity.Post `json:"items"`
	TotalPages int64          `json:"total_pages"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
}

// PostUsecase defines post operations. Mutations take the acting user.
type PostUsecase interface {
	Create(ctx context.Context, actorID int64, input *CreatePostInput) (*entity.Post, error)
	Get(ctx context.Context, postID int64) (*entity.Post, error)
	List(ctx context.Context, input *ListPostsInput) (*PostPage, error)
	ListByCategory(ctx context.Context, slug string) ([]*entity.Post, error)
	Update(ctx context.Context, actorID, postID int64, input *UpdatePostInput) (*entity.Post, error)
	Delete(ctx context.Context, actorID, postID int64) error
}
