package queries

import (
	"context"

	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListCartQueryHandler struct {
	db *gorm.DB
}

func NewListCartQueryHandler(db *gorm.DB) ListCartQueryHandler {
	return ListCartQueryHandler{db: db}
}

// Handle returns ObjectNotFound when the cart is empty.
func (h ListCartQueryHandler) Handle(ctx context.Context, query ListCartQuery) ([]CartLineView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := services.NewPolicy().Authorize(query.principal, services.UseCart, services.Resource{}); err != nil {
		return nil, err
	}

	var rows []cartLineRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT id, user_id, menu_item_id, quantity, unit_price, price
		FROM cart_lines
		WHERE user_id = ?
		ORDER BY id
	`, query.principal.UserID.Int64()).Scan(&rows).Error; err != nil {
		return nil, err
	}

	lines := make([]CartLineView, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, r.view())
	}

	if len(lines) == 0 {
		return nil, errs.NewObjectNotFoundError("cart", "no items in cart")
	}
	return lines, nil
}
