package commands

import (
	"context"

	"littlelemon/internal/core/domain/services"
)

// DeleteMenuItemCommandHandler removes a menu item and the cart lines holding it.
// Items that appear in placed orders cannot be deleted.
type DeleteMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteMenuItemCommandHandler(uowFactory CatalogUoWFactory) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := services.NewPolicy().Authorize(cmd.Principal(), services.DeleteMenuItem, services.Resource{}); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.MenuItemRepository().Delete(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
