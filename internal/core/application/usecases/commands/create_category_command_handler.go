package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/services"
)

type CreateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateCategoryCommandHandler(uowFactory CatalogUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*catalog.Category, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := services.NewPolicy().Authorize(cmd.Principal(), services.CreateCategory, services.Resource{}); err != nil {
		return nil, err
	}

	category, err := catalog.NewCategory(cmd.Slug(), cmd.Title())
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

	if err = uow.CategoryRepository().Add(ctx, category); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return category, nil
}
