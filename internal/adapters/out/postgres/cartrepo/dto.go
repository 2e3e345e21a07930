// Package cartrepo persists cart lines.
package cartrepo

import (
	"littlelemon/internal/adapters/out/postgres/catalogrepo"
	"littlelemon/internal/adapters/out/postgres/userrepo"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// CartLineDTO is unique per (user, menu item). Lines disappear with their user or
// menu item.
type CartLineDTO struct {
	ID         int64                    `gorm:"primaryKey"`
	UserID     int64                    `gorm:"not null;uniqueIndex:idx_cart_lines_user_menu_item"`
	MenuItemID int64                    `gorm:"not null;uniqueIndex:idx_cart_lines_user_menu_item;index"`
	Quantity   int16                    `gorm:"type:smallint;not null"`
	UnitPrice  decimal.Decimal          `gorm:"type:numeric(6,2);not null"`
	Price      decimal.Decimal          `gorm:"type:numeric(6,2);not null"`
	User       *userrepo.UserDTO        `gorm:"constraint:OnDelete:CASCADE"`
	MenuItem   *catalogrepo.MenuItemDTO `gorm:"constraint:OnDelete:CASCADE"`
}

func (CartLineDTO) TableName() string {
	return "cart_lines"
}

func fromDomain(l *cart.Line) CartLineDTO {
	return CartLineDTO{
		ID:         l.ID().Int64(),
		UserID:     l.UserID().Int64(),
		MenuItemID: l.MenuItemID().Int64(),
		Quantity:   int16(l.Quantity()),
		UnitPrice:  l.UnitPrice().Decimal(),
		Price:      l.Price().Decimal(),
	}
}

func toDomain(dto CartLineDTO) (*cart.Line, error) {
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return cart.RestoreLine(
		kernel.ID(dto.ID), kernel.ID(dto.UserID), kernel.ID(dto.MenuItemID), int(dto.Quantity), unitPrice, price,
	)
}
