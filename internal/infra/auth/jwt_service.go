// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"encoding/json"
	"log/slog"
	"time"

	"quill/config"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
	logger        *slog.Logger
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("jwt access and refresh secrets must differ")
	}

	accessTTL, refreshTTL := time.Hour, time.Hour*24*7
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
		logger:        logger,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given subject.
func (s *jwtService) GenerateTokens(subjectID int64) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.IssueAccessToken(subjectID)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.IssueRefreshToken(subjectID)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// IssueAccessToken signs an access token with the access secret.
func (s *jwtService) IssueAccessToken(subjectID int64) (string, error) {
	return s.generateToken(subjectID, s.accessTTL, s.accessSecret, entity.TokenTypeAccess)
}

// IssueRefreshToken signs a refresh token with the refresh secret.
func (s *jwtService) IssueRefreshToken(subjectID int64) (string, error) {
	return s.generateToken(subjectID, s.refreshTTL, s.refreshSecret, entity.TokenTypeRefresh)
}

// ValidateToken checks the validity of a token string against a secret.
// The reason of a failure is logged but never returned to the caller.
func (s *jwtService) ValidateToken(tokenString string, secret string) (*entity.TokenClaims, error) {
	claims, err := s.parse(tokenString, secret)
	if err != nil {
		if s.logger != nil {
			s.logger.Debug("Token validation failed", slog.Any("error", err))
		}

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token validation failed")
	}

	return claims, nil
}

func (s *jwtService) parse(tokenString, secret string) (*entity.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	},
		jwt.WithJSONNumber(),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	sub, ok := mapClaims["sub"].(json.Number)
	if !ok {
		return nil, errors.New("subject missing from token")
	}
	subjectID, err := sub.Int64()
	if err != nil {
		return nil, errors.Wrap(err, "subject is not an integer")
	}

	exp, err := mapClaims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, errors.New("expiration missing from token")
	}

	tokenType, _ := mapClaims["type"].(string)

	return &entity.TokenClaims{
		SubjectID: subjectID,
		Type:      entity.TokenType(tokenType),
		ExpiresAt: exp.Time,
	}, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(subjectID int64, ttl time.Duration, secret string, tokenType entity.TokenType) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":  subjectID,           // Subject (who the token is for)
		"iat":  now.Unix(),          // Issued At
		"exp":  now.Add(ttl).Unix(), // Expiration Time
		"type": string(tokenType),   // Type of token (access or refresh)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return signed, nil
}
