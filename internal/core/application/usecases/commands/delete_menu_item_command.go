package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	principal  *identity.Principal
	menuItemID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteMenuItemCommand(principal *identity.Principal, menuItemID kernel.ID) (DeleteMenuItemCommand, error) {
	cmd := DeleteMenuItemCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setMenuItemID(menuItemID); err != nil {
		return DeleteMenuItemCommand{}, err
	}

	return cmd, nil
}

func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

func (c DeleteMenuItemCommand) Principal() *identity.Principal { return c.principal }
func (c DeleteMenuItemCommand) MenuItemID() kernel.ID          { return c.menuItemID }

func (c *DeleteMenuItemCommand) setMenuItemID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.menuItemID = id
	return nil
}
