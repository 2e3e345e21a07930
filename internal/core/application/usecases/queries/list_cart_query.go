package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListCartQueryIsNotConstructed = errors.New(
	"ListCartQuery must be created via NewListCartQuery constructor",
)

type ListCartQuery struct {
	principal *identity.Principal

	guard guard.ConstructorGuard
}

func NewListCartQuery(principal *identity.Principal) ListCartQuery {
	return ListCartQuery{principal: principal, guard: guard.NewConstructorGuard()}
}

func (q ListCartQuery) Validate() error {
	return q.guard.Validate(ErrListCartQueryIsNotConstructed)
}

type CartLineView struct {
	ID        kernel.ID
	User      kernel.ID
	MenuItem  kernel.ID
	Quantity  int
	UnitPrice decimal.Decimal
	Price     decimal.Decimal
}
