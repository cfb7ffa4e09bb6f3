package postgres

import (
	"context"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postRepository implements the domain.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// FindByID retrieves a single post by ID.
func (repo *postRepository) FindByID(ctx context.Context, id int64) (*entity.Post, error) {
	var postM model.PostModel
	if err := repo.db.WithContext(ctx).First(&postM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// List returns one page of posts, newest first, with the total row count.
func (repo *postRepository) List(ctx context.Context, limit, offset int) ([]*entity.Post, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.PostModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count posts")
	}

	var postMs []model.PostModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&postMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list posts")
	}

	return toPostDomains(postMs), total, nil
}

// ListByCategorySlug returns all posts of the category addressed by slug.
func (repo *postRepository) ListByCategorySlug(ctx context.Context, slug string) ([]*entity.Post, error) {
	var postMs []model.PostModel
	if err := repo.db.WithContext(ctx).
		Joins("JOIN categories ON categories.id = posts.category_id").
		Where("categories.slug = ?", slug).
		Order("posts.created_at DESC").
		Order("posts.id DESC").
		Find(&postMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list posts by category")
	}

	return toPostDomains(postMs), nil
}

// Create persists a new post and sets its generated ID.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("post references a missing category or author")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt

	return nil
}

// Update saves title, content and category of an existing post.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{
			"title":       post.Title,
			"content":     post.Content,
			"category_id": post.CategoryID,
		})
	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("post references a missing category")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// Delete removes the post and its comments, reporting how many posts were deleted.
func (repo *postRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result := repo.db.WithContext(ctx).Delete(&model.PostModel{}, id)
	if err := result.Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete post")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toPostDomain(data *model.PostModel) *entity.Post {
	return &entity.Post{
		ID:         data.ID,
		Title:      data.Title,
		Content:    data.Content,
		UserID:     data.UserID,
		CategoryID: data.CategoryID,
		CreatedAt:  data.CreatedAt,
	}
}

func toPostDomains(data []model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, 0, len(data))
	for i := range data {
		posts = append(posts, toPostDomain(&data[i]))
	}

	return posts
}

func fromPostDomain(data *entity.Post) *model.PostModel {
	return &model.PostModel{
		ID:         data.ID,
		Title:      data.Title,
		Content:    data.Content,
		UserID:     data.UserID,
		CategoryID: data.CategoryID,
		CreatedAt:  data.CreatedAt,
	}
}
