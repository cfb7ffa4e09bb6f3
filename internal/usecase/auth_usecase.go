// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"quill/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the credentials presented at login. Identifier is a username or an email.
type LoginInput struct {
	Identifier string
	Password   string
}

// RefreshInput carries the refresh token presented to obtain a new access token.
type RefreshInput struct {
	RefreshToken string
}

// ForgotPasswordInput names the account that wants a reset token.
type ForgotPasswordInput struct {
	Email string
}

// ResetPasswordInput redeems a reset token for a new password.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// --- Output DTOs ---

// TokenPair returns the tokens generated after a successful login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RefreshOutput returns the newly issued access token.
type RefreshOutput struct {
	AccessToken string
}

// AuthUsecase defines credential and token operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*TokenPair, error)
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
