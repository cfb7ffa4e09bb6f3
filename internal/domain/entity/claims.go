package entity

import "time"

// TokenType distinguishes access tokens from refresh tokens inside the claims.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// TokenClaims is the verified payload of a signed token.
type TokenClaims struct {
	SubjectID int64
	Type      TokenType
	ExpiresAt time.Time
}
