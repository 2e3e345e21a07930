package queries

import (
	"time"

	"littlelemon/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

type orderRow struct {
	ID             int64
	UserID         int64
	DeliveryCrewID *int64
	Status         bool
	Total          decimal.Decimal
	Date           time.Time
}

func (r orderRow) view() OrderView {
	v := OrderView{
		ID:     kernel.ID(r.ID),
		User:   kernel.ID(r.UserID),
		Status: r.Status,
		Total:  r.Total,
		Date:   r.Date,
	}
	if r.DeliveryCrewID != nil {
		v.DeliveryCrew = kernel.ID(*r.DeliveryCrewID).Ptr()
	}
	return v
}

type orderItemRow struct {
	ID         int64
	OrderID    int64
	MenuItemID int64
	Quantity   int
	UnitPrice  decimal.Decimal
	Price      decimal.Decimal
}

func (r orderItemRow) view() OrderItemView {
	return OrderItemView{
		ID:        kernel.ID(r.ID),
		Order:     kernel.ID(r.OrderID),
		MenuItem:  kernel.ID(r.MenuItemID),
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
		Price:     r.Price,
	}
}

type cartLineRow struct {
	ID         int64
	UserID     int64
	MenuItemID int64
	Quantity   int
	UnitPrice  decimal.Decimal
	Price      decimal.Decimal
}

func (r cartLineRow) view() CartLineView {
	return CartLineView{
		ID:        kernel.ID(r.ID),
		User:      kernel.ID(r.UserID),
		MenuItem:  kernel.ID(r.MenuItemID),
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
		Price:     r.Price,
	}
}
