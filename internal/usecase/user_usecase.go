package usecase

import (
	"context"

	"quill/internal/domain/entity"
)

// UpdateProfileInput holds the optional profile fields; nil leaves a field untouched.
type UpdateProfileInput struct {
	Username *string
	Email    *string
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// UserUsecase defines account operations. Admin-only methods are gated at the route.
type UserUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID int64, input *UpdateProfileInput) (*entity.User, error)
	DeleteProfile(ctx context.Context, userID int64) error
	ChangePassword(ctx context.Context, userID int64, input *ChangePasswordInput) error

	ListUsers(ctx context.Context) ([]*entity.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}
