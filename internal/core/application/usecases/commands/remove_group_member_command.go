package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrRemoveGroupMemberCommandIsNotConstructed = errors.New(
	"RemoveGroupMemberCommand must be created via NewRemoveGroupMemberCommand constructor",
)

type RemoveGroupMemberCommand struct { //nolint:recvcheck //using for validation
	principal *identity.Principal
	role      identity.Role
	userID    kernel.ID

	guard guard.ConstructorGuard
}

func NewRemoveGroupMemberCommand(
	principal *identity.Principal, groupSlug string, userID kernel.ID,
) (RemoveGroupMemberCommand, error) {
	cmd := RemoveGroupMemberCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	role, ok := identity.GroupFromSlug(groupSlug)
	if !ok {
		return RemoveGroupMemberCommand{}, errs.NewObjectNotFoundError("group", groupSlug)
	}
	cmd.role = role

	if err := cmd.setUserID(userID); err != nil {
		return RemoveGroupMemberCommand{}, err
	}

	return cmd, nil
}

func (c RemoveGroupMemberCommand) Validate() error {
	return c.guard.Validate(ErrRemoveGroupMemberCommandIsNotConstructed)
}

func (c RemoveGroupMemberCommand) Principal() *identity.Principal {
	return c.principal
}

func (c RemoveGroupMemberCommand) Role() identity.Role {
	return c.role
}

func (c RemoveGroupMemberCommand) UserID() kernel.ID {
	return c.userID
}

func (c *RemoveGroupMemberCommand) setUserID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}
