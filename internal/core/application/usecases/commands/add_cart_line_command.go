package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrAddCartLineCommandIsNotConstructed = errors.New(
	"AddCartLineCommand must be created via NewAddCartLineCommand constructor",
)

// AddCartLineCommand puts quantity units of a menu item into the caller's cart.
//
// Example:
//
//	cmd, err := NewAddCartLineCommand(principal, kernel.ID(3), "2")
//	if err != nil {
//	    return err // quantity was fractional, negative or not a number
//	}
//	added, err := handler.Handle(ctx, cmd)
type AddCartLineCommand struct { //nolint:recvcheck //using for validation
	principal  *identity.Principal
	menuItemID kernel.ID
	quantity   int

	guard guard.ConstructorGuard
}

// NewAddCartLineCommand parses the raw quantity as sent by the client.
func NewAddCartLineCommand(
	principal *identity.Principal, menuItemID kernel.ID, rawQuantity string,
) (AddCartLineCommand, error) {
	cmd := AddCartLineCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuItemID(menuItemID),
		cmd.setQuantity(rawQuantity),
	); err != nil {
		return AddCartLineCommand{}, err
	}

	return cmd, nil
}

func (c AddCartLineCommand) Validate() error {
	return c.guard.Validate(ErrAddCartLineCommandIsNotConstructed)
}

func (c AddCartLineCommand) Principal() *identity.Principal {
	return c.principal
}

func (c AddCartLineCommand) MenuItemID() kernel.ID {
	return c.menuItemID
}

func (c AddCartLineCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartLineCommand) setMenuItemID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.menuItemID = id
	return nil
}

func (c *AddCartLineCommand) setQuantity(raw string) error {
	quantity, err := cart.ParseQuantity(raw)
	if err != nil {
		return err
	}

	c.quantity = quantity
	return nil
}
