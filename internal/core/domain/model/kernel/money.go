package kernel

import (
	"errors"
	"fmt"

	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney or NewPrice")

var (
	// MinPrice is the smallest accepted unit or line price.
	MinPrice = decimal.New(1, -2)
	// MaxAmount is the largest value a numeric(6,2) column holds.
	MaxAmount = decimal.New(999999, -2)
)

// Money is an immutable amount with two fractional digits.
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// Zero returns a valid zero amount, the identity for Add.
func Zero() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// NewMoney accepts amounts in [0, MaxAmount] with at most two fractional digits.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if !amount.Equal(amount.Round(2)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s has more than 2 decimal places", amount))
	}
	if amount.IsNegative() || amount.GreaterThan(MaxAmount) {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), "0.00", MaxAmount.StringFixed(2))
	}
	return Money{amount: amount.Round(2), guard: guard.NewConstructorGuard()}, nil
}

// NewPrice is NewMoney with the additional lower bound MinPrice.
func NewPrice(amount decimal.Decimal) (Money, error) {
	m, err := NewMoney(amount)
	if err != nil {
		return Money{}, err
	}
	if m.amount.LessThan(MinPrice) {
		return Money{}, errs.NewValueIsOutOfRangeError(
			"price", amount.String(), MinPrice.StringFixed(2), MaxAmount.StringFixed(2))
	}
	return m, nil
}

// MoneyFromString parses values such as "9.99".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns m+other, failing when the sum no longer fits the column.
func (m Money) Add(other Money) (Money, error) {
	return NewMoney(m.amount.Add(other.amount))
}

// Times returns m multiplied by a whole quantity.
func (m Money) Times(quantity int) (Money, error) {
	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(quantity))))
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String renders the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
