package middleware

import (
	"log/slog"
	"strings"

	"quill/config"
	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	authorizer service.Authorizer
	cfg        *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, authorizer service.Authorizer, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, authorizer: authorizer, cfg: cfg}
}

// Authenticate validates the bearer access token and attaches its claims to the request.
// Every failure is reported as the same unauthorized error.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil {
			return err
		}

		// Only access-class tokens authenticate requests.
		if claims.Type != entity.TokenTypeAccess {
			return domainerrors.ErrInvalidToken.WrapMessage("token is not an access token")
		}

		deliverycontext.SetClaims(c, claims)
		deliverycontext.AnnotateLogger(c, slog.Int64("subject_id", claims.SubjectID))

		return next(c)
	}
}

// RequireAdmin admits only administrators. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := deliverycontext.GetClaims(c)
		if !ok {
			return domainerrors.ErrUnauthorized.WrapMessage("no verified claims on request")
		}

		if err := m.authorizer.AuthorizeAdmin(c.Request().Context(), claims.SubjectID); err != nil {
			return err
		}

		return next(c)
	}
}
