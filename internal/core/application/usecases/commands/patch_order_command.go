package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/guard"
)

var ErrPatchOrderCommandIsNotConstructed = errors.New(
	"PatchOrderCommand must be created via NewPatchOrderCommand constructor",
)

// PatchOrderCommand is a partial update of the delivery crew and status of an order.
type PatchOrderCommand struct {
	principal *identity.Principal
	orderID   kernel.ID
	changes   order.Changes

	guard guard.ConstructorGuard
}

func NewPatchOrderCommand(
	principal *identity.Principal, orderID kernel.ID, changes order.Changes,
) (PatchOrderCommand, error) {
	cmd := PatchOrderCommand{
		principal: principal,
		orderID:   orderID,
		changes:   changes,
		guard:     guard.NewConstructorGuard(),
	}

	return cmd, nil
}

func (c PatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrPatchOrderCommandIsNotConstructed)
}

func (c PatchOrderCommand) Principal() *identity.Principal {
	return c.principal
}

func (c PatchOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c PatchOrderCommand) Changes() order.Changes {
	return c.changes
}
