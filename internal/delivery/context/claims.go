package context

import (
	"quill/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const keyClaims ContextKey = "claims"

// SetClaims stores the verified claims for the handlers of the request.
func SetClaims(c echo.Context, claims *entity.TokenClaims) {
	c.Set(string(keyClaims), claims)
}

// GetClaims returns the claims attached by the authentication middleware.
func GetClaims(c echo.Context) (*entity.TokenClaims, bool) {
	claims, ok := c.Get(string(keyClaims)).(*entity.TokenClaims)

	return claims, ok && claims != nil
}
