package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// MenuItemFields are the writable fields of a menu item.
type MenuItemFields struct {
	Title      string
	Price      kernel.Money
	Featured   bool
	CategoryID kernel.ID
}

type CreateMenuItemCommand struct {
	principal *identity.Principal
	fields    MenuItemFields

	guard guard.ConstructorGuard
}

func NewCreateMenuItemCommand(principal *identity.Principal, fields MenuItemFields) CreateMenuItemCommand {
	return CreateMenuItemCommand{
		principal: principal,
		fields:    fields,
		guard:     guard.NewConstructorGuard(),
	}
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) Principal() *identity.Principal { return c.principal }
func (c CreateMenuItemCommand) Fields() MenuItemFields         { return c.fields }
