package usecase

import (
	"context"

	"quill/internal/domain/entity"
)

// CommentUsecase defines comment operations. Mutations take the acting user.
type CommentUsecase interface {
	Create(ctx context.Context, actorID, postID int64, content string) (*entity.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]*entity.Comment, error)
	Update(ctx context.Context, actorID, commentID int64, content string) (*entity.Comment, error)
	Delete(ctx context.Context, actorID, commentID int64) error
}
