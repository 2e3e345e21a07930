package queries

import (
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// OrderFilter holds optional equality filters. Nil fields are not applied.
type OrderFilter struct {
	ID           *kernel.ID
	Status       *bool
	User         *kernel.ID
	Date         *time.Time
	DeliveryCrew *kernel.ID
}

// ListOrdersQuery lists the orders visible to the principal.
//
// Example:
//
//	page, _ := NewPage(1, 20)
//	query := NewListOrdersQuery(principal, OrderFilter{Status: &delivered}, "-date", page)
//	orders, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // nothing in the principal's scope
//	}
type ListOrdersQuery struct {
	principal *identity.Principal
	filter    OrderFilter
	ordering  string
	page      Page

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(principal *identity.Principal, filter OrderFilter, ordering string, page Page) ListOrdersQuery {
	return ListOrdersQuery{
		principal: principal,
		filter:    filter,
		ordering:  ordering,
		page:      page,
		guard:     guard.NewConstructorGuard(),
	}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// OrderView is the read representation of an order with its items.
type OrderView struct {
	ID           kernel.ID
	User         kernel.ID
	DeliveryCrew *kernel.ID
	Status       bool
	Total        decimal.Decimal
	Date         time.Time
	Items        []OrderItemView
}

type OrderItemView struct {
	ID        kernel.ID
	Order     kernel.ID
	MenuItem  kernel.ID
	Quantity  int
	UnitPrice decimal.Decimal
	Price     decimal.Decimal
}
