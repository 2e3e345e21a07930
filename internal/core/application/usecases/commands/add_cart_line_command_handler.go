package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/services"
)

// AddedCartLine describes the stored line together with the item title for the
// confirmation message.
type AddedCartLine struct {
	Line  *cart.Line
	Title string
}

// AddCartLineCommandHandler prices a menu item at its current catalog price and stores
// the snapshot as a cart line.
type AddCartLineCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewAddCartLineCommandHandler(uowFactory CartUoWFactory) AddCartLineCommandHandler {
	return AddCartLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns an ObjectNotFoundError for an unknown menu item and a
// ValueIsInvalidError when the item is already in the cart. Existing lines are never
// merged.
func (h AddCartLineCommandHandler) Handle(ctx context.Context, cmd AddCartLineCommand) (AddedCartLine, error) {
	if err := cmd.Validate(); err != nil {
		return AddedCartLine{}, err
	}

	if err := services.NewPolicy().Authorize(cmd.Principal(), services.UseCart, services.Resource{}); err != nil {
		return AddedCartLine{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AddedCartLine{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item, err := uow.MenuItemRepository().Get(ctx, cmd.MenuItemID())
	if err != nil {
		return AddedCartLine{}, err
	}

	line, err := cart.NewLine(cmd.Principal().UserID, item, cmd.Quantity())
	if err != nil {
		return AddedCartLine{}, err
	}

	if err = uow.CartRepository().Add(ctx, line); err != nil {
		return AddedCartLine{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AddedCartLine{}, err
	}

	return AddedCartLine{Line: line, Title: item.Title()}, nil
}
