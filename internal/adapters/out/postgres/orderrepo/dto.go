// Package orderrepo maps order aggregates and their items to the orders and
// order_items tables.
package orderrepo

import (
	"time"

	"littlelemon/internal/adapters/out/postgres/catalogrepo"
	"littlelemon/internal/adapters/out/postgres/userrepo"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is indexed by delivery crew, status and date since those are the list filters.
type OrderDTO struct {
	ID             int64             `gorm:"primaryKey"`
	UserID         int64             `gorm:"not null;index"`
	DeliveryCrewID *int64            `gorm:"index"`
	Status         bool              `gorm:"not null;default:false;index"`
	Total          decimal.Decimal   `gorm:"type:numeric(6,2);not null"`
	Date           time.Time         `gorm:"type:date;not null;index"`
	Items          []OrderItemDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	User           *userrepo.UserDTO `gorm:"constraint:OnDelete:CASCADE"`
	DeliveryCrew   *userrepo.UserDTO `gorm:"constraint:OnDelete:SET NULL"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is unique per (order, menu item). A menu item referenced by an order
// item cannot be deleted.
type OrderItemDTO struct {
	ID         int64                    `gorm:"primaryKey"`
	OrderID    int64                    `gorm:"not null;uniqueIndex:idx_order_items_order_menu_item"`
	MenuItemID int64                    `gorm:"not null;uniqueIndex:idx_order_items_order_menu_item;index"`
	Quantity   int16                    `gorm:"type:smallint;not null"`
	UnitPrice  decimal.Decimal          `gorm:"type:numeric(6,2);not null"`
	Price      decimal.Decimal          `gorm:"type:numeric(6,2);not null"`
	MenuItem   *catalogrepo.MenuItemDTO `gorm:"constraint:OnDelete:RESTRICT"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var crewID *int64
	if id := o.DeliveryCrew(); id != nil {
		raw := id.Int64()
		crewID = &raw
	}

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:         it.ID().Int64(),
			OrderID:    o.ID().Int64(),
			MenuItemID: it.MenuItemID().Int64(),
			Quantity:   int16(it.Quantity()),
			UnitPrice:  it.UnitPrice().Decimal(),
			Price:      it.Price().Decimal(),
		})
	}

	return OrderDTO{
		ID:             o.ID().Int64(),
		UserID:         o.UserID().Int64(),
		DeliveryCrewID: crewID,
		Status:         bool(o.Status()),
		Total:          o.Total().Decimal(),
		Date:           o.Date(),
		Items:          items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]*order.Item, 0, len(dto.Items))
	for _, it := range dto.Items {
		unitPrice, err := kernel.NewMoney(it.UnitPrice)
		if err != nil {
			return nil, err
		}
		price, err := kernel.NewMoney(it.Price)
		if err != nil {
			return nil, err
		}
		item, err := order.RestoreItem(kernel.ID(it.ID), kernel.ID(it.MenuItemID), int(it.Quantity), unitPrice, price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	var crewID *kernel.ID
	if dto.DeliveryCrewID != nil {
		crewID = kernel.ID(*dto.DeliveryCrewID).Ptr()
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		kernel.ID(dto.ID), kernel.ID(dto.UserID), crewID, order.Status(dto.Status), total, dto.Date, items,
	)
}
