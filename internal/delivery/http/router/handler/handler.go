// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	deliverycontext "quill/internal/delivery/context"
	domainerrors "quill/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrBadRequest.WrapMessage("request body could not be decoded")
	}

	return c.Validate(req)
}

// actorID returns the subject of the verified access token.
func actorID(c echo.Context) (int64, error) {
	claims, ok := deliverycontext.GetClaims(c)
	if !ok {
		return 0, domainerrors.ErrUnauthorized.WrapMessage("no verified claims on request")
	}

	return claims.SubjectID, nil
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrBadRequest.WrapMessage("invalid " + name)
	}

	return id, nil
}
