package repository

import (
	"context"
	"testing"

	"quill/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager runs the callback against Factory, so tests set
// expectations on the factory's repositories instead of on the transaction.
type MockTransactionManager struct {
	mock.Mock

	Factory *MockRepositoryFactory
}

// NewMockTransactionManager creates a transaction manager over the given repositories.
func NewMockTransactionManager(t *testing.T, factory *MockRepositoryFactory) *MockTransactionManager {
	m := &MockTransactionManager{Factory: factory}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := m.Called(ctx).Error(0); err != nil {
		return err
	}

	return fn(m.Factory)
}

// MockRepositoryFactory hands out fixed repository mocks.
type MockRepositoryFactory struct {
	Users      *MockUserRepository
	Posts      *MockPostRepository
	Comments   *MockCommentRepository
	Categories *MockCategoryRepository
}

func (f *MockRepositoryFactory) UserRepo() repository.UserRepository {
	return f.Users
}

func (f *MockRepositoryFactory) PostRepo() repository.PostRepository {
	return f.Posts
}

func (f *MockRepositoryFactory) CommentRepo() repository.CommentRepository {
	return f.Comments
}

func (f *MockRepositoryFactory) CategoryRepo() repository.CategoryRepository {
	return f.Categories
}
