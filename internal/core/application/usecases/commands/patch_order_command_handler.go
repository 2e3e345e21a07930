package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"
)

// PatchOrderCommandHandler applies a partial update to an order.
//
// Managers may change any subset of delivery crew and status. A delivery crew member
// may only set the status of an order assigned to them; any delivery crew value they
// send is ignored. Every other caller is forbidden.
type PatchOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewPatchOrderCommandHandler(uowFactory OrderUoWFactory) PatchOrderCommandHandler {
	return PatchOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle leaves the order untouched when it returns an error. A delivery crew member
// patching someone else's order gets an AccessError of kind ErrOwnershipMismatch.
func (h PatchOrderCommandHandler) Handle(ctx context.Context, cmd PatchOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	policy := services.NewPolicy()
	principal := cmd.Principal()
	if err := policy.Authorize(principal, services.PatchOrder, services.Resource{}); err != nil {
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

	if err = policy.Authorize(principal, services.PatchOrder, services.Resource{Order: o}); err != nil {
		return nil, err
	}

	changes := cmd.Changes()
	if principal.Has(identity.Manager) {
		if changes.HasDeliveryCrew {
			fields := errs.NewFieldsError()
			if err = checkDeliveryCrew(ctx, uow.UserRepository(), changes.DeliveryCrew, fields); err != nil {
				return nil, err
			}
			if err = fields.OrNil(); err != nil {
				return nil, err
			}
		}
	} else {
		if !changes.HasStatus {
			return nil, errs.NewValueIsRequiredError("status")
		}
		changes = order.Changes{Status: changes.Status, HasStatus: true}
	}

	if err = o.Apply(changes); err != nil {
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
