package repository

import (
	"context"
	"testing"

	"quill/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockCommentRepository is a mock of repository.CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

// NewMockCommentRepository creates a mock whose expectations are asserted on test cleanup.
func NewMockCommentRepository(t *testing.T) *MockCommentRepository {
	m := &MockCommentRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id int64) (*entity.Comment, error) {
	args := m.Called(ctx, id)
	comment, _ := args.Get(0).(*entity.Comment)

	return comment, args.Error(1)
}

func (m *MockCommentRepository) ListByPostID(ctx context.Context, postID int64) ([]*entity.Comment, error) {
	args := m.Called(ctx, postID)
	comments, _ := args.Get(0).([]*entity.Comment)

	return comments, args.Error(1)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)

	return args.Get(0).(int64), args.Error(1)
}
