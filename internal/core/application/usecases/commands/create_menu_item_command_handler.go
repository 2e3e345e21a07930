package commands

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"
)

type CreateMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateMenuItemCommandHandler(uowFactory CatalogUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reports an unknown category as invalid input rather than a missing resource.
func (h CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) (*catalog.MenuItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := services.NewPolicy().Authorize(cmd.Principal(), services.CreateMenuItem, services.Resource{}); err != nil {
		return nil, err
	}

	f := cmd.Fields()
	item, err := catalog.NewMenuItem(f.Title, f.Price, f.Featured, f.CategoryID)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = ensureCategory(ctx, uow, f.CategoryID); err != nil {
		return nil, err
	}

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}

func ensureCategory(ctx context.Context, repos CategoryRepoFactory, id kernel.ID) error {
	_, err := repos.CategoryRepository().Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewValueIsInvalidErrorWithCause("category", err)
	}
	return err
}
