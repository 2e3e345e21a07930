package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrGetOrderItemsQueryIsNotConstructed = errors.New(
	"GetOrderItemsQuery must be created via NewGetOrderItemsQuery constructor",
)

// GetOrderItemsQuery reads the items of one order of the calling customer.
type GetOrderItemsQuery struct {
	principal *identity.Principal
	orderID   kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderItemsQuery(principal *identity.Principal, orderID kernel.ID) (GetOrderItemsQuery, error) {
	return GetOrderItemsQuery{
		principal: principal,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderItemsQueryIsNotConstructed)
}
