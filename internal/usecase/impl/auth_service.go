// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"strings"
	"time"

	"quill/config"
	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/domain/service"
	"quill/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const resetTokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	resetTokenRepo repository.ResetTokenRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	notifier       service.ResetNotifier
	refreshSecret  string
	resetTokenTTL  time.Duration
	resetTokenLen  int
	now            func() time.Time
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	ResetTokenRepo repository.ResetTokenRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Notifier       service.ResetNotifier
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		resetTokenRepo: params.ResetTokenRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		notifier:       params.Notifier,
		refreshSecret:  params.Config.SecretKey.Refresh,
		resetTokenTTL:  params.Config.ResetToken.TTL,
		resetTokenLen:  params.Config.ResetToken.Length,
		now:            time.Now,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Register creates a regular user account.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username), slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(ctx, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
	}
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("user_id", newUser.ID))

	return newUser, nil
}

// Login verifies the credentials and issues an access/refresh token pair.
// Unknown identifiers and wrong passwords are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenPair, error) {
	user, err := srv.findByIdentifier(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("identifier", input.Identifier), slog.String("reason", "unknown identifier"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(ctx, input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("identifier", input.Identifier), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Int64("user_id", user.ID))

	return &usecase.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (srv *authService) findByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	if strings.Contains(identifier, "@") {
		return srv.userRepo.FindByEmail(ctx, identifier)
	}

	return srv.userRepo.FindByUsername(ctx, identifier)
}

// Refresh validates a refresh token against the refresh secret and issues a new access token.
// The refresh token itself is not rotated.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.ValidateToken(input.RefreshToken, srv.refreshSecret)
	if err != nil {
		return nil, err
	}
	if claims.Type != entity.TokenTypeRefresh {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token is not a refresh token")
	}

	// The subject must still exist; deleted accounts cannot mint new access tokens.
	if _, err := srv.userRepo.FindByID(ctx, claims.SubjectID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidToken.WrapMessage("token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to resolve refresh token subject")
	}

	accessToken, err := srv.tokenService.IssueAccessToken(claims.SubjectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.RefreshOutput{AccessToken: accessToken}, nil
}

// ForgotPassword issues a fresh reset token for the email, replacing any outstanding one.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "no account for email")
		}

		return errors.Wrap(err, "failed to find user by email")
	}

	token, err := generateResetToken(srv.resetTokenLen)
	if err != nil {
		return errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	if err := srv.resetTokenRepo.Upsert(ctx, &entity.ResetToken{
		Email:     input.Email,
		Token:     token,
		CreatedAt: srv.now(),
	}); err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}

	if err := srv.notifier.NotifyResetToken(ctx, input.Email, token); err != nil {
		return errors.Wrap(err, "failed to deliver reset token")
	}

	return nil
}

// ResetPassword redeems a reset token. Tokens are single use; an expired token is
// removed as soon as it is presented.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	resetToken, err := srv.resetTokenRepo.FindByToken(ctx, input.Token)
	if err != nil {
		if errors.Is(err, repository.ErrResetTokenNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidResetToken, "reset token not found")
		}

		return errors.Wrap(err, "failed to find reset token")
	}

	if resetToken.IsExpired(srv.now(), srv.resetTokenTTL) {
		// Keyed on the token so a fresher token of the same email survives.
		if _, err := srv.resetTokenRepo.Consume(ctx, resetToken.Email, resetToken.Token); err != nil {
			return errors.Wrap(err, "failed to delete expired reset token")
		}
		srv.log(ctx).Info("Expired reset token presented", slog.String("email", resetToken.Email))

		return errors.Wrap(domainerrors.ErrResetTokenExpired, "reset token expired")
	}

	newHash, err := srv.hasher.Hash(ctx, input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	// Only the request that removes the token may change the password. A token
	// redeemed concurrently or replaced by a newer one is no longer there to remove.
	consumed, err := srv.resetTokenRepo.Consume(ctx, resetToken.Email, resetToken.Token)
	if err != nil {
		return errors.Wrap(err, "failed to consume reset token")
	}
	if !consumed {
		return errors.Wrap(domainerrors.ErrInvalidResetToken, "reset token already used or replaced")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByEmail(ctx, resetToken.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "reset token owner no longer exists")
			}

			return errors.Wrap(err, "failed to find user by email")
		}

		return userRepo.UpdatePasswordHash(ctx, user.ID, newHash)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to reset password", slog.String("email", resetToken.Email), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	srv.log(ctx).Info("Password reset completed", slog.String("email", resetToken.Email))

	return nil
}

// generateResetToken draws length characters uniformly from resetTokenAlphabet.
func generateResetToken(length int) (string, error) {
	// Largest multiple of the alphabet size that fits in a byte; bytes above it are redrawn.
	const limit = 256 - 256%len(resetTokenAlphabet)

	var sb strings.Builder
	sb.Grow(length)
	buf := make([]byte, length)
	for sb.Len() < length {
		if _, err := rand.Read(buf); err != nil {
			return "", errors.Wrap(err, "failed to read random bytes")
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			sb.WriteByte(resetTokenAlphabet[int(b)%len(resetTokenAlphabet)])
			if sb.Len() == length {
				break
			}
		}
	}

	return sb.String(), nil
}
