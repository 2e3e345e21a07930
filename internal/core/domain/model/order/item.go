package order

import (
	"errors"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

// Item is an order line. It is a frozen copy of a cart line.
type Item struct {
	id         kernel.ID
	menuItemID kernel.ID
	quantity   int
	unitPrice  kernel.Money
	price      kernel.Money
}

func itemFromLine(line *cart.Line) (*Item, error) {
	if err := line.Validate(); err != nil {
		return nil, err
	}
	return &Item{
		menuItemID: line.MenuItemID(),
		quantity:   line.Quantity(),
		unitPrice:  line.UnitPrice(),
		price:      line.Price(),
	}, nil
}

// RestoreItem rebuilds a persisted order item.
func RestoreItem(id, menuItemID kernel.ID, quantity int, unitPrice, price kernel.Money) (*Item, error) {
	if err := errors.Join(
		id.Validate(), menuItemID.Validate(), unitPrice.Validate(), price.Validate(),
	); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, cart.MaxQuantity)
	}
	return &Item{
		id:         id,
		menuItemID: menuItemID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		price:      price,
	}, nil
}

func (i *Item) ID() kernel.ID           { return i.id }
func (i *Item) MenuItemID() kernel.ID   { return i.menuItemID }
func (i *Item) Quantity() int           { return i.quantity }
func (i *Item) UnitPrice() kernel.Money { return i.unitPrice }
func (i *Item) Price() kernel.Money     { return i.price }

// SetID stores the identity assigned by the store.
func (i *Item) SetID(id kernel.ID) error {
	if i.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", errors.New("identity already assigned"))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}
