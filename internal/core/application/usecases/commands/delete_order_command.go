package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

type DeleteOrderCommand struct {
	principal *identity.Principal
	orderID   kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(principal *identity.Principal, orderID kernel.ID) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		principal: principal,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}

	return cmd, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) Principal() *identity.Principal {
	return c.principal
}

func (c DeleteOrderCommand) OrderID() kernel.ID {
	return c.orderID
}
