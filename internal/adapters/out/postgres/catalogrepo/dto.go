// Package catalogrepo persists categories and menu items.
package catalogrepo

import (
	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

type CategoryDTO struct {
	ID    int64  `gorm:"primaryKey"`
	Slug  string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Title string `gorm:"type:varchar(255);not null;index"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

// MenuItemDTO keeps its category with ON DELETE RESTRICT: a category in use cannot be
// deleted.
type MenuItemDTO struct {
	ID         int64           `gorm:"primaryKey"`
	Title      string          `gorm:"type:varchar(255);not null;index"`
	Price      decimal.Decimal `gorm:"type:numeric(6,2);not null;index"`
	Featured   bool            `gorm:"not null;default:false;index"`
	CategoryID int64           `gorm:"not null;index"`
	Category   *CategoryDTO    `gorm:"constraint:OnDelete:RESTRICT"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func categoryFromDomain(c *catalog.Category) CategoryDTO {
	return CategoryDTO{
		ID:    c.ID().Int64(),
		Slug:  c.Slug(),
		Title: c.Title(),
	}
}

func categoryToDomain(dto CategoryDTO) (*catalog.Category, error) {
	return catalog.RestoreCategory(kernel.ID(dto.ID), dto.Slug, dto.Title)
}

func menuItemFromDomain(m *catalog.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:         m.ID().Int64(),
		Title:      m.Title(),
		Price:      m.Price().Decimal(),
		Featured:   m.Featured(),
		CategoryID: m.CategoryID().Int64(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreMenuItem(kernel.ID(dto.ID), dto.Title, price, dto.Featured, kernel.ID(dto.CategoryID))
}
