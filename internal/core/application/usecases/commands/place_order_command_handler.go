package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/services"
)

// PlaceOrderCommandHandler materializes a cart into an order.
//
// The cart lines are locked, the order and its items are inserted and the cart is
// drained inside one unit of work: either all of it is committed or nothing is.
//
// Example:
//
//	cmd, _ := NewPlaceOrderCommand(principal, time.Now())
//	placed, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no items in cart
//	case err != nil:
//	    return err
//	}
//	fmt.Println(placed.Total())
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
}

func NewPlaceOrderCommandHandler(uowFactory PlacementUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := services.NewPolicy().Authorize(cmd.Principal(), services.PlaceOrder, services.Resource{}); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	orderRepo := uow.OrderRepository()
	userID := cmd.Principal().UserID

	lines, err := cartRepo.LockByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	placed, err := order.Place(userID, lines, cmd.PlacedAt())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, placed); err != nil {
		return nil, err
	}

	if _, err = cartRepo.DeleteByUser(ctx, userID); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
