package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
)

type CategoryRepository interface {
	// Add persists a category. A duplicate slug fails with a ValueIsInvalidError.
	Add(ctx context.Context, category *catalog.Category) error
	Get(ctx context.Context, id kernel.ID) (*catalog.Category, error)
}

type MenuItemRepository interface {
	Add(ctx context.Context, item *catalog.MenuItem) error
	Update(ctx context.Context, item *catalog.MenuItem) error
	Get(ctx context.Context, id kernel.ID) (*catalog.MenuItem, error)

	// Delete removes the item and the cart lines pointing at it. Items already
	// referenced by orders are kept and a ValueIsInvalidError is returned.
	Delete(ctx context.Context, id kernel.ID) error
}
