package repository

import (
	"context"
	"testing"

	"quill/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockResetTokenRepository is a mock of repository.ResetTokenRepository.
type MockResetTokenRepository struct {
	mock.Mock
}

// NewMockResetTokenRepository creates a mock whose expectations are asserted on test cleanup.
func NewMockResetTokenRepository(t *testing.T) *MockResetTokenRepository {
	m := &MockResetTokenRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockResetTokenRepository) Upsert(ctx context.Context, token *entity.ResetToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockResetTokenRepository) FindByToken(ctx context.Context, token string) (*entity.ResetToken, error) {
	args := m.Called(ctx, token)
	resetToken, _ := args.Get(0).(*entity.ResetToken)

	return resetToken, args.Error(1)
}

func (m *MockResetTokenRepository) Consume(ctx context.Context, email, token string) (bool, error) {
	args := m.Called(ctx, email, token)

	return args.Bool(0), args.Error(1)
}
