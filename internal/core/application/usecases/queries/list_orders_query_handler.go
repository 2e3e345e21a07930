package queries

import (
	"context"
	"fmt"

	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
)

var orderColumns = map[string]string{
	"id":            "id",
	"user":          "user_id",
	"delivery_crew": "delivery_crew_id",
	"status":        "status",
	"total":         "total",
	"date":          "date",
}

// ListOrdersQueryHandler lists orders scoped by role: managers see every order, delivery
// crew the orders assigned to them and customers their own. An empty scope is reported
// as ObjectNotFound before filters are applied.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (Paged[OrderView], error) {
	if err := query.Validate(); err != nil {
		return Paged[OrderView]{}, err
	}

	scope, err := services.NewPolicy().Scope(query.principal)
	if err != nil {
		return Paged[OrderView]{}, err
	}

	db := h.db.WithContext(ctx)
	scoped := func() *gorm.DB {
		tx := db.Table("orders")
		switch scope {
		case services.AssignedOrders:
			tx = tx.Where("delivery_crew_id = ?", query.principal.UserID.Int64())
		case services.OwnOrders:
			tx = tx.Where("user_id = ?", query.principal.UserID.Int64())
		}
		return tx
	}

	var total int64
	if err = scoped().Count(&total).Error; err != nil {
		return Paged[OrderView]{}, err
	}
	if total == 0 {
		return Paged[OrderView]{}, emptyScope(scope, query.principal.Username)
	}

	filtered := func() *gorm.DB {
		return applyOrderFilter(scoped(), query.filter)
	}

	var count int64
	if err = filtered().Count(&count).Error; err != nil {
		return Paged[OrderView]{}, err
	}
	if err = query.page.check(count); err != nil {
		return Paged[OrderView]{}, err
	}

	var rows []orderRow
	if err = filtered().
		Select("id, user_id, delivery_crew_id, status, total, date").
		Order(orderBy(query.ordering, orderColumns, "id ASC")).
		Limit(query.page.Size).
		Offset(query.page.Offset()).
		Scan(&rows).Error; err != nil {
		return Paged[OrderView]{}, err
	}

	orders, err := withItems(db, rows)
	if err != nil {
		return Paged[OrderView]{}, err
	}

	return Paged[OrderView]{Count: count, Page: query.page, Results: orders}, nil
}

func emptyScope(scope services.OrderScope, username string) error {
	switch scope {
	case services.AssignedOrders:
		return errs.NewObjectNotFoundError("order", fmt.Sprintf("no orders assigned to %s", username))
	case services.OwnOrders:
		return errs.NewObjectNotFoundError("order", "no orders placed yet")
	default:
		return errs.NewObjectNotFoundError("order", "no orders")
	}
}

func applyOrderFilter(tx *gorm.DB, f OrderFilter) *gorm.DB {
	if f.ID != nil {
		tx = tx.Where("id = ?", f.ID.Int64())
	}
	if f.Status != nil {
		tx = tx.Where("status = ?", *f.Status)
	}
	if f.User != nil {
		tx = tx.Where("user_id = ?", f.User.Int64())
	}
	if f.Date != nil {
		tx = tx.Where("date = ?", f.Date.UTC().Format("2006-01-02"))
	}
	if f.DeliveryCrew != nil {
		tx = tx.Where("delivery_crew_id = ?", f.DeliveryCrew.Int64())
	}
	return tx
}

// withItems loads the items of the given orders with one query and attaches them in
// the order of rows.
func withItems(db *gorm.DB, rows []orderRow) ([]OrderView, error) {
	orders := make([]OrderView, 0, len(rows))
	if len(rows) == 0 {
		return orders, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}

	var items []orderItemRow
	if err := db.Raw(`
		SELECT id, order_id, menu_item_id, quantity, unit_price, price
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Scan(&items).Error; err != nil {
		return nil, err
	}

	byOrder := make(map[int64][]OrderItemView, len(rows))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it.view())
	}

	for _, r := range rows {
		view := r.view()
		view.Items = byOrder[r.ID]
		if view.Items == nil {
			view.Items = []OrderItemView{}
		}
		orders = append(orders, view)
	}
	return orders, nil
}
