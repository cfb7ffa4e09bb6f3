package service

import "quill/internal/domain/entity"

// TokenService defines the interface for generating and validating JWTs.
// Tokens are valid purely by signature and expiry; there is no revocation list,
// so a leaked token stays usable until it expires.
type TokenService interface {
	// GenerateTokens issues an access token and a refresh token for the subject.
	GenerateTokens(subjectID int64) (accessToken, refreshToken string, err error)

	// IssueAccessToken signs a short-lived token with the access secret.
	IssueAccessToken(subjectID int64) (string, error)

	// IssueRefreshToken signs a long-lived token with the refresh secret.
	IssueRefreshToken(subjectID int64) (string, error)

	// ValidateToken verifies signature and expiry against the given secret.
	// Every failure is reported as domain errors.ErrInvalidToken.
	ValidateToken(tokenString, secret string) (*entity.TokenClaims, error)
}
