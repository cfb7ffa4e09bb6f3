package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockResetNotifier is a mock of service.ResetNotifier.
type MockResetNotifier struct {
	mock.Mock
}

// NewMockResetNotifier creates a mock whose expectations are asserted on test cleanup.
func NewMockResetNotifier(t *testing.T) *MockResetNotifier {
	m := &MockResetNotifier{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockResetNotifier) NotifyResetToken(ctx context.Context, email, token string) error {
	return m.Called(ctx, email, token).Error(0)
}
