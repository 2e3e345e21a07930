package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/services"
)

type RemoveGroupMemberCommandHandler struct {
	uowFactory IdentityUoWFactory
}

func NewRemoveGroupMemberCommandHandler(uowFactory IdentityUoWFactory) RemoveGroupMemberCommandHandler {
	return RemoveGroupMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the removed member, or an ObjectNotFoundError for an unknown user.
// Removing a user who is not in the group succeeds.
func (h RemoveGroupMemberCommandHandler) Handle(
	ctx context.Context, cmd RemoveGroupMemberCommand,
) (*identity.Principal, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := services.NewPolicy().Authorize(cmd.Principal(), services.ManageGroups, services.Resource{}); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	member, err := userRepo.Principal(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err = userRepo.RemoveRole(ctx, cmd.UserID(), cmd.Role()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return member, nil
}
