package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates together
// with their items.
type OrderRepository interface {
	// Add persists a freshly placed order and all of its items, assigning
	// identities to both.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable fields of an order: delivery crew and status.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items. Returns an ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// Delete removes the order and its items. Returns an ObjectNotFoundError when absent.
	Delete(ctx context.Context, id kernel.ID) error
}
