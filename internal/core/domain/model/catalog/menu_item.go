package catalog

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem or RestoreMenuItem")

// MenuItem is a priced dish. Its price is only read when a cart line is created;
// later price changes never reach existing cart lines or orders.
type MenuItem struct {
	id         kernel.ID
	title      string
	price      kernel.Money
	featured   bool
	categoryID kernel.ID

	isConstructed bool
}

func NewMenuItem(title string, price kernel.Money, featured bool, categoryID kernel.ID) (*MenuItem, error) {
	m := &MenuItem{isConstructed: true}
	if err := m.Update(title, price, featured, categoryID); err != nil {
		return nil, err
	}
	return m, nil
}

func RestoreMenuItem(
	id kernel.ID, title string, price kernel.Money, featured bool, categoryID kernel.ID,
) (*MenuItem, error) {
	m, err := NewMenuItem(title, price, featured, categoryID)
	if err != nil {
		return nil, err
	}
	if err = m.SetID(id); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

func (m *MenuItem) ID() kernel.ID         { return m.id }
func (m *MenuItem) Title() string         { return m.title }
func (m *MenuItem) Price() kernel.Money   { return m.price }
func (m *MenuItem) Featured() bool        { return m.featured }
func (m *MenuItem) CategoryID() kernel.ID { return m.categoryID }

// Update replaces every mutable field, validating all of them together.
func (m *MenuItem) Update(title string, price kernel.Money, featured bool, categoryID kernel.ID) error {
	title, titleErr := validateTitle(title)
	var priceErr error
	if err := price.Validate(); err != nil {
		priceErr = errs.NewValueIsRequiredErrorWithCause("price", err)
	} else if _, err = kernel.NewPrice(price.Decimal()); err != nil {
		priceErr = err
	}
	if err := errors.Join(titleErr, priceErr, categoryID.Validate()); err != nil {
		return err
	}

	m.title = title
	m.price = price
	m.featured = featured
	m.categoryID = categoryID
	return nil
}

func (m *MenuItem) SetID(id kernel.ID) error {
	if m.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", errors.New("identity already assigned"))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}
