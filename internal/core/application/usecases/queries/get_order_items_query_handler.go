package queries

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderItemsQueryHandler returns the items of an order. An order without items is
// treated as missing; an order of another customer is forbidden.
type GetOrderItemsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderItemsQueryHandler(db *gorm.DB) GetOrderItemsQueryHandler {
	return GetOrderItemsQueryHandler{db: db}
}

func (h GetOrderItemsQueryHandler) Handle(ctx context.Context, query GetOrderItemsQuery) ([]OrderItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	policy := services.NewPolicy()
	if err := policy.Authorize(query.principal, services.ViewOrderItems, services.Resource{}); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var items []orderItemRow
	if err := db.Raw(`
		SELECT id, order_id, menu_item_id, quantity, unit_price, price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, query.orderID.Int64()).Scan(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.orderID)
	}

	var header orderRow
	if err := db.Raw(`
		SELECT id, user_id, delivery_crew_id, status, total, date
		FROM orders
		WHERE id = ?
	`, query.orderID.Int64()).Scan(&header).Error; err != nil {
		return nil, err
	}

	var crew *kernel.ID
	if header.DeliveryCrewID != nil {
		crew = kernel.ID(*header.DeliveryCrewID).Ptr()
	}
	o, err := order.RestoreOrder(
		kernel.ID(header.ID), kernel.ID(header.UserID), crew, order.Status(header.Status),
		kernel.Zero(), header.Date, nil,
	)
	if err != nil {
		return nil, err
	}

	if err = policy.Authorize(query.principal, services.ViewOrderItems, services.Resource{Order: o}); err != nil {
		return nil, err
	}

	views := make([]OrderItemView, 0, len(items))
	for _, it := range items {
		views = append(views, it.view())
	}
	return views, nil
}
