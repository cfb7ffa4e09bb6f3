package usecase

import (
	"context"

	"quill/internal/domain/entity"
)

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name string
	Slug string
}

// CategoryUsecase defines category operations.
type CategoryUsecase interface {
	List(ctx context.Context) ([]*entity.Category, error)
	Create(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)
}
