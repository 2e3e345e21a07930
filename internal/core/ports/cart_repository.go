package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart lines.
type CartRepository interface {
	// Add persists a new line. A second line for the same (user, menu item) pair
	// fails with a ValueIsInvalidError.
	Add(ctx context.Context, line *cart.Line) error

	// LockByUser returns the lines of a user and locks them until the surrounding
	// transaction ends, so concurrent placements cannot consume the same lines.
	LockByUser(ctx context.Context, userID kernel.ID) ([]*cart.Line, error)

	// DeleteByUser removes every line of the user and reports how many were removed.
	DeleteByUser(ctx context.Context, userID kernel.ID) (int64, error)
}
