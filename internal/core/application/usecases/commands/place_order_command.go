package commands

import (
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand converts the caller's whole cart into an order dated placedAt.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	principal *identity.Principal
	placedAt  time.Time

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(principal *identity.Principal, placedAt time.Time) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setPlacedAt(placedAt); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Principal() *identity.Principal {
	return c.principal
}

func (c PlaceOrderCommand) PlacedAt() time.Time {
	return c.placedAt
}

func (c *PlaceOrderCommand) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placedAt")
	}

	c.placedAt = placedAt
	return nil
}
