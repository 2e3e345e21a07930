package cart

import (
	"fmt"
	"strings"

	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxQuantity is the upper bound of the smallint quantity column.
const MaxQuantity = 32767

// ParseQuantity accepts the textual forms clients send for food_quantity
// ("2", "2.0", 2) and rejects fractional, negative or zero values.
func ParseQuantity(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errs.NewValueIsRequiredError("quantity")
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%q is not a number", raw))
	}
	if !d.IsInteger() {
		return 0, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%s is not an integer", d))
	}
	if d.LessThan(decimal.NewFromInt(1)) || d.GreaterThan(decimal.NewFromInt(MaxQuantity)) {
		return 0, errs.NewValueIsOutOfRangeError("quantity", d.String(), 1, MaxQuantity)
	}
	return int(d.IntPart()), nil
}

func validateQuantity(q int) error {
	if q < 1 || q > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", q, 1, MaxQuantity)
	}
	return nil
}
