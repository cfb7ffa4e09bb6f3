package repository

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCommentNotFound is returned when a comment does not exist.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Comment, error)
	ListByPostID(ctx context.Context, postID int64) ([]*entity.Comment, error)
	Create(ctx context.Context, comment *entity.Comment) error
	Update(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, id int64) (int64, error)
}
