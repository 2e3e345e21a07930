package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrAddGroupMemberCommandIsNotConstructed = errors.New(
	"AddGroupMemberCommand must be created via NewAddGroupMemberCommand constructor",
)

// AddGroupMemberCommand enrols the user identified by credentials in a group.
type AddGroupMemberCommand struct { //nolint:recvcheck //using for validation
	principal   *identity.Principal
	role        identity.Role
	credentials identity.Credentials

	guard guard.ConstructorGuard
}

// NewAddGroupMemberCommand resolves the group slug through the closed group table;
// an unknown slug is an ObjectNotFoundError.
func NewAddGroupMemberCommand(
	principal *identity.Principal, groupSlug, username, password string,
) (AddGroupMemberCommand, error) {
	cmd := AddGroupMemberCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setRole(groupSlug); err != nil {
		return AddGroupMemberCommand{}, err
	}

	creds, err := identity.NewCredentials(username, password)
	if err != nil {
		return AddGroupMemberCommand{}, err
	}
	cmd.credentials = creds

	return cmd, nil
}

func (c AddGroupMemberCommand) Validate() error {
	return c.guard.Validate(ErrAddGroupMemberCommandIsNotConstructed)
}

func (c AddGroupMemberCommand) Principal() *identity.Principal {
	return c.principal
}

func (c AddGroupMemberCommand) Role() identity.Role {
	return c.role
}

func (c AddGroupMemberCommand) Credentials() identity.Credentials {
	return c.credentials
}

func (c *AddGroupMemberCommand) setRole(slug string) error {
	role, ok := identity.GroupFromSlug(slug)
	if !ok {
		return errs.NewObjectNotFoundError("group", slug)
	}

	c.role = role
	return nil
}
