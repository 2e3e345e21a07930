package cart

import (
	"errors"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine")

// Line is one pending cart entry of a user.
type Line struct {
	id         kernel.ID
	userID     kernel.ID
	menuItemID kernel.ID
	quantity   int
	unitPrice  kernel.Money
	price      kernel.Money

	isConstructed bool
}

// NewLine prices quantity units of item at the item's current catalog price.
func NewLine(userID kernel.ID, item *catalog.MenuItem, quantity int) (*Line, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := errors.Join(userID.Validate(), validateQuantity(quantity)); err != nil {
		return nil, err
	}

	price, err := item.Price().Times(quantity)
	if err != nil {
		return nil, err
	}

	return &Line{
		userID:        userID,
		menuItemID:    item.ID(),
		quantity:      quantity,
		unitPrice:     item.Price(),
		price:         price,
		isConstructed: true,
	}, nil
}

// RestoreLine rebuilds a persisted line. The stored line price must equal
// quantity times unit price.
func RestoreLine(
	id, userID, menuItemID kernel.ID, quantity int, unitPrice, price kernel.Money,
) (*Line, error) {
	if err := errors.Join(
		id.Validate(), userID.Validate(), menuItemID.Validate(), validateQuantity(quantity),
		unitPrice.Validate(), price.Validate(),
	); err != nil {
		return nil, err
	}

	expected, err := unitPrice.Times(quantity)
	if err != nil {
		return nil, err
	}
	if !expected.IsEqual(price) {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			errors.New(price.String()+" does not equal quantity times unit price"))
	}

	return &Line{
		id:            id,
		userID:        userID,
		menuItemID:    menuItemID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		price:         price,
		isConstructed: true,
	}, nil
}

func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

func (l *Line) ID() kernel.ID           { return l.id }
func (l *Line) UserID() kernel.ID       { return l.userID }
func (l *Line) MenuItemID() kernel.ID   { return l.menuItemID }
func (l *Line) Quantity() int           { return l.quantity }
func (l *Line) UnitPrice() kernel.Money { return l.unitPrice }
func (l *Line) Price() kernel.Money     { return l.price }

func (l *Line) SetID(id kernel.ID) error {
	if l.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", errors.New("identity already assigned"))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

// Total sums the line prices of lines.
func Total(lines []*Line) (kernel.Money, error) {
	total := kernel.Zero()
	for _, l := range lines {
		var err error
		if total, err = total.Add(l.price); err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}
