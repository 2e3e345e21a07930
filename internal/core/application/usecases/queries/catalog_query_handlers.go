package queries

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var menuItemColumns = map[string]string{
	"id":       "id",
	"title":    "title",
	"price":    "price",
	"featured": "featured",
	"category": "category_id",
}

type menuItemRow struct {
	ID         int64
	Title      string
	Price      decimal.Decimal
	Featured   bool
	CategoryID int64
}

func (r menuItemRow) view() MenuItemView {
	return MenuItemView{
		ID:       kernel.ID(r.ID),
		Title:    r.Title,
		Price:    r.Price,
		Featured: r.Featured,
		Category: kernel.ID(r.CategoryID),
	}
}

type ListCategoriesQueryHandler struct {
	db *gorm.DB
}

func NewListCategoriesQueryHandler(db *gorm.DB) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{db: db}
}

func (h ListCategoriesQueryHandler) Handle(ctx context.Context, query ListCategoriesQuery) (Paged[CategoryView], error) {
	if err := query.Validate(); err != nil {
		return Paged[CategoryView]{}, err
	}

	if err := services.NewPolicy().Authorize(query.principal, services.ListCategories, services.Resource{}); err != nil {
		return Paged[CategoryView]{}, err
	}

	db := h.db.WithContext(ctx)

	var count int64
	if err := db.Table("categories").Count(&count).Error; err != nil {
		return Paged[CategoryView]{}, err
	}
	if err := query.page.check(count); err != nil {
		return Paged[CategoryView]{}, err
	}

	var rows []struct {
		ID    int64
		Slug  string
		Title string
	}
	if err := db.Raw(`
		SELECT id, slug, title
		FROM categories
		ORDER BY id
		LIMIT ? OFFSET ?
	`, query.page.Size, query.page.Offset()).Scan(&rows).Error; err != nil {
		return Paged[CategoryView]{}, err
	}

	categories := make([]CategoryView, 0, len(rows))
	for _, r := range rows {
		categories = append(categories, CategoryView{ID: kernel.ID(r.ID), Slug: r.Slug, Title: r.Title})
	}

	return Paged[CategoryView]{Count: count, Page: query.page, Results: categories}, nil
}

// ListMenuItemsQueryHandler serves the public menu. Every field can be filtered on and
// ordered by.
type ListMenuItemsQueryHandler struct {
	db *gorm.DB
}

func NewListMenuItemsQueryHandler(db *gorm.DB) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{db: db}
}

func (h ListMenuItemsQueryHandler) Handle(ctx context.Context, query ListMenuItemsQuery) (Paged[MenuItemView], error) {
	if err := query.Validate(); err != nil {
		return Paged[MenuItemView]{}, err
	}

	if err := services.NewPolicy().Authorize(query.principal, services.ListMenuItems, services.Resource{}); err != nil {
		return Paged[MenuItemView]{}, err
	}

	filtered := func() *gorm.DB {
		tx := h.db.WithContext(ctx).Table("menu_items")
		f := query.filter
		if f.ID != nil {
			tx = tx.Where("id = ?", f.ID.Int64())
		}
		if f.Title != nil {
			tx = tx.Where("title = ?", *f.Title)
		}
		if f.Price != nil {
			tx = tx.Where("price = ?", *f.Price)
		}
		if f.Featured != nil {
			tx = tx.Where("featured = ?", *f.Featured)
		}
		if f.Category != nil {
			tx = tx.Where("category_id = ?", f.Category.Int64())
		}
		return tx
	}

	var count int64
	if err := filtered().Count(&count).Error; err != nil {
		return Paged[MenuItemView]{}, err
	}
	if err := query.page.check(count); err != nil {
		return Paged[MenuItemView]{}, err
	}

	var rows []menuItemRow
	if err := filtered().
		Select("id, title, price, featured, category_id").
		Order(orderBy(query.ordering, menuItemColumns, "id ASC")).
		Limit(query.page.Size).
		Offset(query.page.Offset()).
		Scan(&rows).Error; err != nil {
		return Paged[MenuItemView]{}, err
	}

	items := make([]MenuItemView, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.view())
	}

	return Paged[MenuItemView]{Count: count, Page: query.page, Results: items}, nil
}

type GetMenuItemQueryHandler struct {
	db *gorm.DB
}

func NewGetMenuItemQueryHandler(db *gorm.DB) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{db: db}
}

func (h GetMenuItemQueryHandler) Handle(ctx context.Context, query GetMenuItemQuery) (MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return MenuItemView{}, err
	}

	if err := services.NewPolicy().Authorize(query.principal, services.ListMenuItems, services.Resource{}); err != nil {
		return MenuItemView{}, err
	}

	var rows []menuItemRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT id, title, price, featured, category_id
		FROM menu_items
		WHERE id = ?
	`, query.menuItemID.Int64()).Scan(&rows).Error; err != nil {
		return MenuItemView{}, err
	}
	if len(rows) == 0 {
		return MenuItemView{}, errs.NewObjectNotFoundError("menuitem", query.menuItemID)
	}

	return rows[0].view(), nil
}
