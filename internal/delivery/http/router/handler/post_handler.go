package handler

import (
	"net/http"

	"quill/internal/delivery/http/response"
	"quill/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createPostRequest struct {
	Title      string `json:"title" validate:"required,min=3,max=255"`
	Content    string `json:"content" validate:"required,min=3"`
	CategoryID int64  `json:"category_id" validate:"required,gt=0"`
}

type updatePostRequest struct {
	Title      *string `json:"title" validate:"omitempty,min=3,max=255"`
	Content    *string `json:"content" validate:"omitempty,min=3"`
	CategoryID *int64  `json:"category_id" validate:"omitempty,gt=0"`
}

type listPostsQuery struct {
	Page    int `query:"page"`
	PerPage int `query:"per_page"`
}

// PostHandler holds dependencies for post handlers.
type PostHandler struct {
	uc usecase.PostUsecase
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase) *PostHandler {
	return &PostHandler{uc: uc}
}

// Create publishes a post owned by the caller.
func (h *PostHandler) Create(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.uc.Create(c.Request().Context(), userID, &usecase.CreatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, post, "Post created")
}

// Get returns one post.
func (h *PostHandler) Get(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.uc.Get(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "")
}

// List returns one page of posts.
func (h *PostHandler) List(c echo.Context) error {
	var query listPostsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, "INVALID_QUERY", "page and per_page must be integers")
	}

	page, err := h.uc.List(c.Request().Context(), &usecase.ListPostsInput{
		Page:    query.Page,
		PerPage: query.PerPage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// ListByCategory returns the posts of one category.
func (h *PostHandler) ListByCategory(c echo.Context) error {
	posts, err := h.uc.ListByCategory(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts, "")
}

// Update changes a post the caller owns, or any post for admins.
func (h *PostHandler) Update(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.uc.Update(c.Request().Context(), userID, postID, &usecase.UpdatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "Post updated")
}

// Delete removes a post the caller owns, or any post for admins.
func (h *PostHandler) Delete(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, postID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Post deleted")
}
