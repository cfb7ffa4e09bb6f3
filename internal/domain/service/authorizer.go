package service

import (
	"context"

	"quill/internal/domain/entity"
)

// Authorizer is the single place where ownership and role decisions are made.
// Every method fails closed: a lookup error denies with domain errors.ErrForbidden.
type Authorizer interface {
	// AuthorizeMutation allows the actor to update or delete resource when the
	// actor owns it or is an admin.
	AuthorizeMutation(ctx context.Context, resource entity.Owned, actorID int64) error

	// AuthorizeAdmin allows only admins.
	AuthorizeAdmin(ctx context.Context, actorID int64) error
}
