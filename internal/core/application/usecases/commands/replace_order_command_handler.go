package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"
)

const readOnlyField = "cannot be changed once the order is placed"

// ReplaceOrderCommandHandler applies a full update to an order.
type ReplaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewReplaceOrderCommandHandler(uowFactory OrderUoWFactory) ReplaceOrderCommandHandler {
	return ReplaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns an ObjectNotFoundError for an unknown order and a FieldsError when
// the record contradicts the fixed fields or names a user outside the delivery crew.
func (h ReplaceOrderCommandHandler) Handle(ctx context.Context, cmd ReplaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := services.NewPolicy().Authorize(cmd.Principal(), services.ReplaceOrder, services.Resource{}); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	record := cmd.Record()
	fields := errs.NewFieldsError()
	if record.User != nil && *record.User != o.UserID() {
		fields.Add("user", readOnlyField)
	}
	if record.Total != nil && !record.Total.IsEqual(o.Total()) {
		fields.Add("total", readOnlyField)
	}
	if record.Date != nil && !sameDay(*record.Date, o.Date()) {
		fields.Add("date", readOnlyField)
	}
	if err = checkDeliveryCrew(ctx, uow.UserRepository(), record.DeliveryCrew, fields); err != nil {
		return nil, err
	}
	if err = fields.OrNil(); err != nil {
		return nil, err
	}

	if err = o.Apply(order.Changes{
		DeliveryCrew:    record.DeliveryCrew,
		HasDeliveryCrew: true,
		Status:          record.Status,
		HasStatus:       true,
	}); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
