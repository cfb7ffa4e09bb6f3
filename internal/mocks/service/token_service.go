package service

import (
	"testing"

	"quill/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock whose expectations are asserted on test cleanup.
func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateTokens(subjectID int64) (string, string, error) {
	args := m.Called(subjectID)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) IssueAccessToken(subjectID int64) (string, error) {
	args := m.Called(subjectID)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) IssueRefreshToken(subjectID int64) (string, error) {
	args := m.Called(subjectID)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(tokenString, secret string) (*entity.TokenClaims, error) {
	args := m.Called(tokenString, secret)
	claims, _ := args.Get(0).(*entity.TokenClaims)

	return claims, args.Error(1)
}
