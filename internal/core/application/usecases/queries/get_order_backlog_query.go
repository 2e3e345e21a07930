package queries

import (
	"context"
	"errors"

	"littlelemon/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetOrderBacklogQueryIsNotConstructed = errors.New(
	"GetOrderBacklogQuery must be created via NewGetOrderBacklogQuery constructor",
)

// GetOrderBacklogQuery counts orders still waiting on the restaurant. It is an
// operational read used by the backlog job and needs no principal.
type GetOrderBacklogQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderBacklogQuery() GetOrderBacklogQuery {
	return GetOrderBacklogQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBacklogQueryIsNotConstructed)
}

// OrderBacklog splits pending orders by whether a delivery crew member has been assigned.
type OrderBacklog struct {
	Unassigned     int64
	OutForDelivery int64
}

type GetOrderBacklogQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderBacklogQueryHandler(db *gorm.DB) GetOrderBacklogQueryHandler {
	return GetOrderBacklogQueryHandler{db: db}
}

func (h GetOrderBacklogQueryHandler) Handle(ctx context.Context, query GetOrderBacklogQuery) (OrderBacklog, error) {
	if err := query.Validate(); err != nil {
		return OrderBacklog{}, err
	}

	var backlog OrderBacklog
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE delivery_crew_id IS NULL) AS unassigned,
			COUNT(*) FILTER (WHERE delivery_crew_id IS NOT NULL) AS out_for_delivery
		FROM orders
		WHERE status = FALSE
	`).Scan(&backlog).Error
	if err != nil {
		return OrderBacklog{}, err
	}

	return backlog, nil
}
