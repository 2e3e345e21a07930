package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListCategoriesQueryIsNotConstructed = errors.New(
		"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
	)
	ErrListMenuItemsQueryIsNotConstructed = errors.New(
		"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
	)
	ErrGetMenuItemQueryIsNotConstructed = errors.New(
		"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
	)
)

type CategoryView struct {
	ID    kernel.ID
	Slug  string
	Title string
}

type MenuItemView struct {
	ID       kernel.ID
	Title    string
	Price    decimal.Decimal
	Featured bool
	Category kernel.ID
}

type ListCategoriesQuery struct {
	principal *identity.Principal
	page      Page

	guard guard.ConstructorGuard
}

func NewListCategoriesQuery(principal *identity.Principal, page Page) ListCategoriesQuery {
	return ListCategoriesQuery{principal: principal, page: page, guard: guard.NewConstructorGuard()}
}

func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}

// MenuItemFilter holds optional equality filters over every menu item field.
type MenuItemFilter struct {
	ID       *kernel.ID
	Title    *string
	Price    *decimal.Decimal
	Featured *bool
	Category *kernel.ID
}

type ListMenuItemsQuery struct {
	principal *identity.Principal
	filter    MenuItemFilter
	ordering  string
	page      Page

	guard guard.ConstructorGuard
}

func NewListMenuItemsQuery(
	principal *identity.Principal, filter MenuItemFilter, ordering string, page Page,
) ListMenuItemsQuery {
	return ListMenuItemsQuery{
		principal: principal,
		filter:    filter,
		ordering:  ordering,
		page:      page,
		guard:     guard.NewConstructorGuard(),
	}
}

func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

type GetMenuItemQuery struct {
	principal  *identity.Principal
	menuItemID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetMenuItemQuery(principal *identity.Principal, menuItemID kernel.ID) (GetMenuItemQuery, error) {
	if err := menuItemID.Validate(); err != nil {
		return GetMenuItemQuery{}, err
	}
	return GetMenuItemQuery{principal: principal, menuItemID: menuItemID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}
