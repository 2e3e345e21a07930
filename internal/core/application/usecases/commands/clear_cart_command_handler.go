package commands

import (
	"context"

	"littlelemon/internal/core/domain/services"
)

// ClearCartCommandHandler deletes every line of the caller's cart. Clearing an empty
// cart succeeds and reports zero deleted lines.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if err := services.NewPolicy().Authorize(cmd.Principal(), services.UseCart, services.Resource{}); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.CartRepository().DeleteByUser(ctx, cmd.Principal().UserID)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
