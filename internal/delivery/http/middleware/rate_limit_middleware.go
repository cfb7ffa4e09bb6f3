package middleware

import (
	"log/slog"

	deliverycontext "quill/internal/delivery/context"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware throttles a route per client address.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware creates a new rate limit middleware
func NewRateLimitMiddleware(limiter service.RateLimiter, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit rejects the request before the handler runs once the client is over budget.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ip, ok := ClientIP(c.Request())
		if !ok {
			return domainerrors.ErrClientUnidentified
		}

		if m.limiter.IsLimited(ip) {
			deliverycontext.LoggerFrom(c.Request().Context(), m.logger).Warn("Rate limit exceeded",
				slog.String("client_ip", ip),
				slog.String("path", c.Path()),
			)

			return domainerrors.ErrTooManyRequests
		}

		return next(c)
	}
}
