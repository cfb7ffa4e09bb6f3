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

// postService implements the PostUsecase interface.
type postService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	authorizer   service.Authorizer
	logger       *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	PostRepo     repository.PostRepository
	CategoryRepo repository.CategoryRepository
	Authorizer   service.Authorizer
	Logger       *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		postRepo:     params.PostRepo,
		categoryRepo: params.CategoryRepo,
		authorizer:   params.Authorizer,
		logger:       params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Create publishes a post owned by the actor.
func (srv *postService) Create(ctx context.Context, actorID int64, input *usecase.CreatePostInput) (*entity.Post, error) {
	if err := srv.ensureCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	post := &entity.Post{
		Title:      input.Title,
		Content:    input.Content,
		UserID:     actorID,
		CategoryID: input.CategoryID,
	}
	if err := srv.postRepo.Create(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.log(ctx).Debug("Post created", slog.Int64("post_id", post.ID), slog.Int64("user_id", actorID))

	return post, nil
}

// Get returns a single post.
func (srv *postService) Get(ctx context.Context, postID int64) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, mapPostLookupError(err)
	}

	return post, nil
}

// List returns one page of posts, newest first.
func (srv *postService) List(ctx context.Context, input *usecase.ListPostsInput) (*usecase.PostPage, error) {
	page, perPage := input.Page, input.PerPage
	if page < 1 {
		page = usecase.DefaultPage
	}
	if perPage < 1 {
		perPage = usecase.DefaultPerPage
	}

	posts, total, err := srv.postRepo.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return &usecase.PostPage{
		Items:      posts,
		TotalPages: totalPages(total, perPage),
		Page:       page,
		PerPage:    perPage,
	}, nil
}

// ListByCategory returns every post of the category addressed by slug.
func (srv *postService) ListByCategory(ctx context.Context, slug string) ([]*entity.Post, error) {
	if _, err := srv.categoryRepo.FindBySlug(ctx, slug); err != nil {
		return nil, mapCategoryLookupError(err)
	}

	posts, err := srv.postRepo.ListByCategorySlug(ctx, slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts by category")
	}

	return posts, nil
}

// Update changes the given fields when the actor owns the post or is an admin.
func (srv *postService) Update(ctx context.Context, actorID, postID int64, input *usecase.UpdatePostInput) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, mapPostLookupError(err)
	}

	if err := srv.authorizer.AuthorizeMutation(ctx, post, actorID); err != nil {
		return nil, err
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.CategoryID != nil && *input.CategoryID != post.CategoryID {
		if err := srv.ensureCategory(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		post.CategoryID = *input.CategoryID
	}

	if err := srv.postRepo.Update(ctx, post); err != nil {
		return nil, mapPostLookupError(err)
	}

	return post, nil
}

// Delete removes the post when the actor owns it or is an admin.
func (srv *postService) Delete(ctx context.Context, actorID, postID int64) error {
	post, err := srv.postRepo.FindByID(ctx, postID)
	if err != nil {
		return mapPostLookupError(err)
	}

	if err := srv.authorizer.AuthorizeMutation(ctx, post, actorID); err != nil {
		return err
	}

	deleted, err := srv.postRepo.Delete(ctx, postID)
	if err != nil {
		return errors.Wrap(err, "failed to delete post")
	}
	if deleted == 0 {
		return errors.Wrap(domainerrors.ErrPostNotFound, "nothing deleted")
	}

	srv.log(ctx).Info("Post deleted", slog.Int64("post_id", postID), slog.Int64("actor_id", actorID))

	return nil
}

func (srv *postService) ensureCategory(ctx context.Context, categoryID int64) error {
	if _, err := srv.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return mapCategoryLookupError(err)
	}

	return nil
}

// totalPages is ceil(total / perPage).
func totalPages(total int64, perPage int) int64 {
	size := int64(perPage)

	return (total + size - 1) / size
}

func mapPostLookupError(err error) error {
	if errors.Is(err, repository.ErrPostNotFound) {
		return errors.Wrap(domainerrors.ErrPostNotFound, err.Error())
	}

	return errors.Wrap(err, "failed to load post")
}

func mapCategoryLookupError(err error) error {
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return errors.Wrap(domainerrors.ErrCategoryNotFound, err.Error())
	}

	return errors.Wrap(err, "failed to load category")
}
