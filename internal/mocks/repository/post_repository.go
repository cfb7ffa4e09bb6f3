package repository

import (
	"context"
	"testing"

	"quill/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a mock of repository.PostRepository.
type MockPostRepository struct {
	mock.Mock
}

// NewMockPostRepository creates a mock whose expectations are asserted on test cleanup.
func NewMockPostRepository(t *testing.T) *MockPostRepository {
	m := &MockPostRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPostRepository) FindByID(ctx context.Context, id int64) (*entity.Post, error) {
	args := m.Called(ctx, id)
	post, _ := args.Get(0).(*entity.Post)

	return post, args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, limit, offset int) ([]*entity.Post, int64, error) {
	args := m.Called(ctx, limit, offset)
	posts, _ := args.Get(0).([]*entity.Post)

	return posts, args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) ListByCategorySlug(ctx context.Context, slug string) ([]*entity.Post, error) {
	args := m.Called(ctx, slug)
	posts, _ := args.Get(0).([]*entity.Post)

	return posts, args.Error(1)
}

func (m *MockPostRepository) Create(ctx context.Context, post *entity.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockPostRepository) Update(ctx context.Context, post *entity.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)

	return args.Get(0).(int64), args.Error(1)
}
