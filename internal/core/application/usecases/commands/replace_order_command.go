package commands

import (
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/guard"
)

var ErrReplaceOrderCommandIsNotConstructed = errors.New(
	"ReplaceOrderCommand must be created via NewReplaceOrderCommand constructor",
)

// OrderRecord is a full order representation as supplied to a replace. The owner,
// total and date are optional; when present they must match the stored order since
// they are fixed at placement.
type OrderRecord struct {
	DeliveryCrew *kernel.ID
	Status       order.Status
	User         *kernel.ID
	Total        *kernel.Money
	Date         *time.Time
}

// ReplaceOrderCommand is the full update of an order by a manager.
type ReplaceOrderCommand struct {
	principal *identity.Principal
	orderID   kernel.ID
	record    OrderRecord

	guard guard.ConstructorGuard
}

func NewReplaceOrderCommand(
	principal *identity.Principal, orderID kernel.ID, record OrderRecord,
) (ReplaceOrderCommand, error) {
	cmd := ReplaceOrderCommand{
		principal: principal,
		orderID:   orderID,
		record:    record,
		guard:     guard.NewConstructorGuard(),
	}

	return cmd, nil
}

func (c ReplaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrReplaceOrderCommandIsNotConstructed)
}

func (c ReplaceOrderCommand) Principal() *identity.Principal {
	return c.principal
}

func (c ReplaceOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c ReplaceOrderCommand) Record() OrderRecord {
	return c.record
}
