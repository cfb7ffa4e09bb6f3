package impl

import (
	"context"
	"log/slog"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/domain/service"

	"github.com/pkg/errors"
)

// authorizer resolves the actor's role and applies entity.CanMutate.
// It never writes; any failure to resolve the role denies.
type authorizer struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthorizer is the constructor for the single authorization mediator.
func NewAuthorizer(userRepo repository.UserRepository, logger *slog.Logger) service.Authorizer {
	return &authorizer{
		userRepo: userRepo,
		logger:   logger,
	}
}

// AuthorizeMutation allows the owner or an admin.
func (a *authorizer) AuthorizeMutation(ctx context.Context, resource entity.Owned, actorID int64) error {
	role, err := a.resolveRole(ctx, actorID)
	if err != nil {
		return err
	}

	ownerID := resource.OwnerID()
	if !entity.CanMutate(ownerID, actorID, role) {
		a.log(ctx).Warn("Mutation denied",
			slog.Int64("owner_id", ownerID),
			slog.Int64("actor_id", actorID),
			slog.String("role", role.String()),
		)

		return domainerrors.ErrForbidden.WrapMessage("actor is neither owner nor admin")
	}

	return nil
}

// AuthorizeAdmin allows admins only.
func (a *authorizer) AuthorizeAdmin(ctx context.Context, actorID int64) error {
	role, err := a.resolveRole(ctx, actorID)
	if err != nil {
		return err
	}

	if !role.IsAdmin() {
		a.log(ctx).Warn("Admin route denied", slog.Int64("actor_id", actorID), slog.String("role", role.String()))

		return domainerrors.ErrForbidden.WrapMessage("admin role required")
	}

	return nil
}

func (a *authorizer) resolveRole(ctx context.Context, actorID int64) (entity.Role, error) {
	actor, err := a.userRepo.FindByID(ctx, actorID)
	if err != nil {
		a.log(ctx).Warn("Role lookup failed, denying", slog.Int64("actor_id", actorID), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrForbidden, "role lookup failed")
	}

	return actor.Role, nil
}

func (a *authorizer) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, a.logger)
}
