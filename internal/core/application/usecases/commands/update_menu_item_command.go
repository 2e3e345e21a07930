package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// MenuItemPatch names the fields to change; nil fields keep their stored value.
// A full update sets every field.
type MenuItemPatch struct {
	Title      *string
	Price      *kernel.Money
	Featured   *bool
	CategoryID *kernel.ID
}

type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	principal  *identity.Principal
	menuItemID kernel.ID
	patch      MenuItemPatch

	guard guard.ConstructorGuard
}

func NewUpdateMenuItemCommand(
	principal *identity.Principal, menuItemID kernel.ID, patch MenuItemPatch,
) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		principal: principal,
		patch:     patch,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setMenuItemID(menuItemID); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return cmd, nil
}

func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) Principal() *identity.Principal { return c.principal }
func (c UpdateMenuItemCommand) MenuItemID() kernel.ID          { return c.menuItemID }
func (c UpdateMenuItemCommand) Patch() MenuItemPatch           { return c.patch }

func (c *UpdateMenuItemCommand) setMenuItemID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.menuItemID = id
	return nil
}
