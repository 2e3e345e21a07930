package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created by Place or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via Place or RestoreOrder")

	// ErrTotalMismatch is returned when the item prices do not add up to the order total.
	ErrTotalMismatch = errors.New("order total does not equal the sum of its item prices")
)

// Order is the aggregate root of the ordering lifecycle.
//
// Order follows these invariants:
//   - Owner, total, date and items are fixed when the order is placed
//   - Total equals the sum of the item prices
//   - At most one item per menu item
//   - Only the delivery crew reference and the status are mutable
type Order struct {
	id             kernel.ID
	userID         kernel.ID
	deliveryCrewID *kernel.ID
	status         Status
	total          kernel.Money
	date           time.Time
	items          []*Item

	isConstructed bool
}

// Changes is a partial update of the mutable order fields. A field is applied only
// when its Has flag is set; a nil DeliveryCrew with HasDeliveryCrew unassigns the order.
type Changes struct {
	DeliveryCrew    *kernel.ID
	HasDeliveryCrew bool
	Status          Status
	HasStatus       bool
}

// Place converts the complete cart of userID into a new order dated at the given day.
//
// Returns an ObjectNotFoundError when the cart is empty and a ValueIsInvalidError when
// a line belongs to someone else. The caller is responsible for draining the cart in
// the same transaction that persists the order.
func Place(userID kernel.ID, lines []*cart.Line, placedAt time.Time) (*Order, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.NewObjectNotFoundError("cart", "no items in cart")
	}

	items := make([]*Item, 0, len(lines))
	seen := make(map[kernel.ID]struct{}, len(lines))
	for _, line := range lines {
		item, err := itemFromLine(line)
		if err != nil {
			return nil, err
		}
		if line.UserID() != userID {
			return nil, errs.NewValueIsInvalidErrorWithCause("cart",
				fmt.Errorf("line %s belongs to user %s", line.ID(), line.UserID()))
		}
		if _, dup := seen[item.menuItemID]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("cart",
				fmt.Errorf("menu item %s appears twice", item.menuItemID))
		}
		seen[item.menuItemID] = struct{}{}
		items = append(items, item)
	}

	total, err := cart.Total(lines)
	if err != nil {
		return nil, err
	}

	return &Order{
		userID:        userID,
		status:        Pending,
		total:         total,
		date:          dateOf(placedAt),
		items:         items,
		isConstructed: true,
	}, nil
}

// RestoreOrder rebuilds a persisted order. Items may be omitted when only the
// header is needed; when present their prices must add up to total.
func RestoreOrder(
	id, userID kernel.ID,
	deliveryCrewID *kernel.ID,
	status Status,
	total kernel.Money,
	date time.Time,
	items []*Item,
) (*Order, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), total.Validate()); err != nil {
		return nil, err
	}
	if deliveryCrewID != nil {
		if err := deliveryCrewID.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Order{
		id:             id,
		userID:         userID,
		deliveryCrewID: clonePtr(deliveryCrewID),
		status:         status,
		total:          total,
		date:           dateOf(date),
		items:          slices.Clone(items),
		isConstructed:  true,
	}
	if len(items) > 0 {
		if err := o.CheckTotal(); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.ID { return o.id }

func (o *Order) UserID() kernel.ID { return o.userID }

// DeliveryCrew returns the assigned crew member, or nil when unassigned.
func (o *Order) DeliveryCrew() *kernel.ID { return clonePtr(o.deliveryCrewID) }

func (o *Order) Status() Status { return o.status }

func (o *Order) Total() kernel.Money { return o.total }

// Date is the placement day (UTC midnight).
func (o *Order) Date() time.Time { return o.date }

func (o *Order) Items() []*Item { return slices.Clone(o.items) }

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID kernel.ID) bool {
	return o.userID == userID
}

// IsAssignedTo reports whether userID is the delivery crew of the order.
func (o *Order) IsAssignedTo(userID kernel.ID) bool {
	return o.deliveryCrewID != nil && *o.deliveryCrewID == userID
}

// Apply updates the mutable fields named by changes.
func (o *Order) Apply(changes Changes) error {
	if changes.HasDeliveryCrew && changes.DeliveryCrew != nil {
		if err := changes.DeliveryCrew.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("delivery_crew", err)
		}
	}

	if changes.HasDeliveryCrew {
		o.deliveryCrewID = clonePtr(changes.DeliveryCrew)
	}
	if changes.HasStatus {
		o.status = changes.Status
	}
	return nil
}

// CheckTotal verifies that the item prices add up to the total.
func (o *Order) CheckTotal() error {
	sum := kernel.Zero()
	for _, item := range o.items {
		var err error
		if sum, err = sum.Add(item.price); err != nil {
			return err
		}
	}
	if !sum.IsEqual(o.total) {
		return fmt.Errorf("%w: total %s, items %s", ErrTotalMismatch, o.total, sum)
	}
	return nil
}

// SetID stores the identity assigned by the store.
func (o *Order) SetID(id kernel.ID) error {
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", errors.New("identity already assigned"))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func clonePtr(id *kernel.ID) *kernel.ID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
