package impl

import (
	"context"
	"testing"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	mockRepo "quill/internal/mocks/repository"
	mockSvc "quill/internal/mocks/service"
	"quill/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service    usecase.UserUsecase
	txManager  *mockRepo.MockTransactionManager
	userRepo   *mockRepo.MockUserRepository
	txUserRepo *mockRepo.MockUserRepository
	hasher     *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txUserRepo := mockRepo.NewMockUserRepository(t)
	fx := userServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t, &mockRepo.MockRepositoryFactory{Users: txUserRepo}),
		userRepo:   mockRepo.NewMockUserRepository(t),
		txUserRepo: txUserRepo,
		hasher:     mockSvc.NewMockPasswordHasher(t),
	}
	fx.service = NewUserService(UserServiceParams{
		TxManager: fx.txManager,
		UserRepo:  fx.userRepo,
		Hasher:    fx.hasher,
		Logger:    newDiscardLogger(),
	})

	return fx
}

func TestUserService_UpdateProfile(t *testing.T) {
	fx := createTestUserService(t)
	email := "new@example.com"

	fx.txManager.On("Execute", mock.Anything).Return(nil)
	fx.txUserRepo.On("FindByID", mock.Anything, int64(3)).
		Return(&entity.User{ID: 3, Username: "alice", Email: "old@example.com"}, nil)
	fx.txUserRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Username == "alice" && u.Email == "new@example.com"
	})).Return(nil)

	user, err := fx.service.UpdateProfile(context.Background(), 3, &usecase.UpdateProfileInput{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
}

func TestUserService_ChangePassword(t *testing.T) {
	t.Run("old password mismatch", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.On("FindByID", mock.Anything, int64(3)).Return(&entity.User{ID: 3, PasswordHash: "stored"}, nil)
		fx.hasher.On("Check", mock.Anything, "wrong", "stored").Return(false)

		err := fx.service.ChangePassword(context.Background(), 3, &usecase.ChangePasswordInput{OldPassword: "wrong", NewPassword: "NewPassword1"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.On("FindByID", mock.Anything, int64(3)).Return(&entity.User{ID: 3, PasswordHash: "stored"}, nil)
		fx.hasher.On("Check", mock.Anything, "OldPassword1", "stored").Return(true)
		fx.hasher.On("Hash", mock.Anything, "NewPassword1").Return("fresh", nil)
		fx.userRepo.On("UpdatePasswordHash", mock.Anything, int64(3), "fresh").Return(nil)

		assert.NoError(t, fx.service.ChangePassword(context.Background(), 3, &usecase.ChangePasswordInput{OldPassword: "OldPassword1", NewPassword: "NewPassword1"}))
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	fx := createTestUserService(t)
	fx.userRepo.On("Delete", mock.Anything, int64(3)).Return(int64(1), nil).Once()
	fx.userRepo.On("Delete", mock.Anything, int64(4)).Return(int64(0), nil).Once()

	assert.NoError(t, fx.service.DeleteUser(context.Background(), 3))
	assert.ErrorIs(t, fx.service.DeleteUser(context.Background(), 4), domainerrors.ErrUserNotFound)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	fx.userRepo.On("FindByID", mock.Anything, int64(3)).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(context.Background(), 3)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
