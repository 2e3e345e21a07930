package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/services"
)

type UpdateMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpdateMenuItemCommandHandler(uowFactory CatalogUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle merges the patch onto the stored item and validates the result as a whole.
// Prices already captured in carts and orders are not touched.
func (h UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) (*catalog.MenuItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := services.NewPolicy().Authorize(cmd.Principal(), services.UpdateMenuItem, services.Resource{}); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.MenuItemRepository()

	item, err := itemRepo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return nil, err
	}

	patch := cmd.Patch()
	title, price, featured, categoryID := item.Title(), item.Price(), item.Featured(), item.CategoryID()
	if patch.Title != nil {
		title = *patch.Title
	}
	if patch.Price != nil {
		price = *patch.Price
	}
	if patch.Featured != nil {
		featured = *patch.Featured
	}
	if patch.CategoryID != nil && *patch.CategoryID != categoryID {
		categoryID = *patch.CategoryID
		if err = ensureCategory(ctx, uow, categoryID); err != nil {
			return nil, err
		}
	}

	if err = item.Update(title, price, featured, categoryID); err != nil {
		return nil, err
	}

	if err = itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
