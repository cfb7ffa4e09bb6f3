package impl

import (
	"context"
	"log/slog"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/domain/service"
	"quill/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// GetProfile returns the account of the caller.
func (srv *userService) GetProfile(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserLookupError(err)
	}

	return user, nil
}

// UpdateProfile changes username and/or email inside one transaction.
func (srv *userService) UpdateProfile(ctx context.Context, userID int64, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return mapUserLookupError(err)
		}

		if input.Username != nil {
			user.Username = *input.Username
		}
		if input.Email != nil {
			user.Email = *input.Email
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	srv.log(ctx).Debug("Profile updated", slog.Int64("user_id", userID))

	return updated, nil
}

// DeleteProfile removes the caller's own account.
func (srv *userService) DeleteProfile(ctx context.Context, userID int64) error {
	return srv.deleteUser(ctx, userID)
}

// ChangePassword verifies the current password before storing the new one.
func (srv *userService) ChangePassword(ctx context.Context, userID int64, input *usecase.ChangePasswordInput) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return mapUserLookupError(err)
	}

	if !srv.hasher.Check(ctx, input.OldPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Password change rejected", slog.Int64("user_id", userID))

		return errors.Wrap(domainerrors.ErrInvalidCredentials, "old password mismatch")
	}

	newHash, err := srv.hasher.Hash(ctx, input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	if err := srv.userRepo.UpdatePasswordHash(ctx, userID, newHash); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	return nil
}

// ListUsers returns every account.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// DeleteUser removes any account by ID.
func (srv *userService) DeleteUser(ctx context.Context, userID int64) error {
	return srv.deleteUser(ctx, userID)
}

func (srv *userService) deleteUser(ctx context.Context, userID int64) error {
	deleted, err := srv.userRepo.Delete(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to delete user")
	}
	if deleted == 0 {
		return errors.Wrap(domainerrors.ErrUserNotFound, "nothing deleted")
	}

	srv.log(ctx).Info("User deleted", slog.Int64("user_id", userID))

	return nil
}

func mapUserLookupError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrUserNotFound, err.Error())
	}

	return errors.Wrap(err, "failed to find user")
}
