package service

import (
	"context"
	"testing"

	"quill/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockAuthorizer is a mock of service.Authorizer.
type MockAuthorizer struct {
	mock.Mock
}

// NewMockAuthorizer creates a mock whose expectations are asserted on test cleanup.
func NewMockAuthorizer(t *testing.T) *MockAuthorizer {
	m := &MockAuthorizer{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthorizer) AuthorizeMutation(ctx context.Context, resource entity.Owned, actorID int64) error {
	return m.Called(ctx, resource, actorID).Error(0)
}

// OwnedBy matches an entity.Owned argument by its owner.
func OwnedBy(ownerID int64) any {
	return mock.MatchedBy(func(resource entity.Owned) bool {
		return resource != nil && resource.OwnerID() == ownerID
	})
}

func (m *MockAuthorizer) AuthorizeAdmin(ctx context.Context, actorID int64) error {
	return m.Called(ctx, actorID).Error(0)
}
