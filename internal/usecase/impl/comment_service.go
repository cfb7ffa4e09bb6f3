package impl

import (
	"context"
	"log/slog"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/domain/service"
	"quill/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// commentService implements the CommentUsecase interface.
type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	authorizer  service.Authorizer
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	PostRepo    repository.PostRepository
	Authorizer  service.Authorizer
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		postRepo:    params.PostRepo,
		authorizer:  params.Authorizer,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Create attaches a comment by the actor to an existing post.
func (srv *commentService) Create(ctx context.Context, actorID, postID int64, content string) (*entity.Comment, error) {
	if _, err := srv.postRepo.FindByID(ctx, postID); err != nil {
		return nil, mapPostLookupError(err)
	}

	comment := &entity.Comment{
		Content: content,
		UserID:  actorID,
		PostID:  postID,
	}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	return comment, nil
}

// ListByPost returns the comments of an existing post.
func (srv *commentService) ListByPost(ctx context.Context, postID int64) ([]*entity.Comment, error) {
	if _, err := srv.postRepo.FindByID(ctx, postID); err != nil {
		return nil, mapPostLookupError(err)
	}

	comments, err := srv.commentRepo.ListByPostID(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// Update replaces the content when the actor owns the comment or is an admin.
func (srv *commentService) Update(ctx context.Context, actorID, commentID int64, content string) (*entity.Comment, error) {
	comment, err := srv.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return nil, mapCommentLookupError(err)
	}

	if err := srv.authorizer.AuthorizeMutation(ctx, comment, actorID); err != nil {
		return nil, err
	}

	comment.Content = content
	if err := srv.commentRepo.Update(ctx, comment); err != nil {
		return nil, mapCommentLookupError(err)
	}

	return comment, nil
}

// Delete removes the comment when the actor owns it or is an admin.
func (srv *commentService) Delete(ctx context.Context, actorID, commentID int64) error {
	comment, err := srv.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return mapCommentLookupError(err)
	}

	if err := srv.authorizer.AuthorizeMutation(ctx, comment, actorID); err != nil {
		return err
	}

	deleted, err := srv.commentRepo.Delete(ctx, commentID)
	if err != nil {
		return errors.Wrap(err, "failed to delete comment")
	}
	if deleted == 0 {
		return errors.Wrap(domainerrors.ErrCommentNotFound, "nothing deleted")
	}

	srv.log(ctx).Info("Comment deleted", slog.Int64("comment_id", commentID), slog.Int64("actor_id", actorID))

	return nil
}

func mapCommentLookupError(err error) error {
	if errors.Is(err, repository.ErrCommentNotFound) {
		return errors.Wrap(domainerrors.ErrCommentNotFound, err.Error())
	}

	return errors.Wrap(err, "failed to load comment")
}
