package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/services"
)

// AddGroupMemberCommandHandler checks the member's credentials before enrolling them,
// so a manager cannot add an account by username alone.
type AddGroupMemberCommandHandler struct {
	uowFactory IdentityUoWFactory
}

func NewAddGroupMemberCommandHandler(uowFactory IdentityUoWFactory) AddGroupMemberCommandHandler {
	return AddGroupMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the enrolled user. An unknown username is an ObjectNotFoundError
// and a wrong password a ValueIsInvalidError.
func (h AddGroupMemberCommandHandler) Handle(ctx context.Context, cmd AddGroupMemberCommand) (*identity.Principal, error) {
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

	member, err := userRepo.Authenticate(ctx, cmd.Credentials())
	if err != nil {
		return nil, err
	}

	if err = userRepo.AddRole(ctx, member.UserID, cmd.Role()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return member, nil
}
