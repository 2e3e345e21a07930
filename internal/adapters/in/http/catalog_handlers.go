package http

import (
	"net/http"

	"littlelemon/internal/adapters/in/http/auth"
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/generated/servers"
	"littlelemon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ListCategories handles GET /category.
func (s *Server) ListCategories(ctx echo.Context, params servers.ListCategoriesParams) error {
	page, err := s.page(params.Page)
	if err != nil {
		return err
	}

	query := queries.NewListCategoriesQuery(auth.PrincipalFrom(ctx), page)
	result, err := s.listCategoriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := servers.CategoryPage{
		Count:   result.Count,
		Results: make([]servers.Category, len(result.Results)),
	}
	response.Next, response.Previous = pageLinks(ctx, result)
	for i, c := range result.Results {
		response.Results[i] = categoryFromView(c)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCategory handles POST /category.
func (s *Server) CreateCategory(ctx echo.Context) error {
	var body servers.CreateCategoryJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd := commands.NewCreateCategoryCommand(auth.PrincipalFrom(ctx), body.Slug, body.Title)
	category, err := s.createCategoryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, categoryFromDomain(category))
}

// ListMenuItems handles GET /menu-items with equality filters on every field.
func (s *Server) ListMenuItems(ctx echo.Context, params servers.ListMenuItemsParams) error {
	page, err := s.page(params.Page)
	if err != nil {
		return err
	}

	filter := queries.MenuItemFilter{
		ID:       idPtr(params.Id),
		Title:    params.Title,
		Featured: params.Featured,
		Category: idPtr(params.Category),
	}
	if params.Price != nil {
		price, err := decimal.NewFromString(*params.Price)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("price", errNotANumber)
		}
		filter.Price = &price
	}

	ordering := ""
	if params.Ordering != nil {
		ordering = *params.Ordering
	}

	query := queries.NewListMenuItemsQuery(auth.PrincipalFrom(ctx), filter, ordering, page)
	result, err := s.listMenuItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := servers.MenuItemPage{
		Count:   result.Count,
		Results: make([]servers.MenuItem, len(result.Results)),
	}
	response.Next, response.Previous = pageLinks(ctx, result)
	for i, item := range result.Results {
		response.Results[i] = menuItemFromView(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMenuItem handles POST /menu-items.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var body servers.CreateMenuItemJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	price, err := parseMoney("price", body.Price)
	if err != nil {
		return err
	}

	fields := commands.MenuItemFields{
		Title:      body.Title,
		Price:      price,
		CategoryID: kernel.ID(body.Category),
	}
	if body.Featured != nil {
		fields.Featured = *body.Featured
	}

	cmd := commands.NewCreateMenuItemCommand(auth.PrincipalFrom(ctx), fields)
	item, err := s.createMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, menuItemFromDomain(item))
}

// GetMenuItem handles GET /menu-items/{menuItemId}.
func (s *Server) GetMenuItem(ctx echo.Context, menuItemId int64) error {
	query, err := queries.NewGetMenuItemQuery(auth.PrincipalFrom(ctx), kernel.ID(menuItemId))
	if err != nil {
		return err
	}

	item, err := s.getMenuItemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, menuItemFromView(item))
}

// ReplaceMenuItem handles PUT /menu-items/{menuItemId}. An omitted featured flag
// resets it to false.
func (s *Server) ReplaceMenuItem(ctx echo.Context, menuItemId int64) error {
	var body servers.ReplaceMenuItemJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	price, err := parseMoney("price", body.Price)
	if err != nil {
		return err
	}

	featured := body.Featured != nil && *body.Featured
	patch := commands.MenuItemPatch{
		Title:      &body.Title,
		Price:      &price,
		Featured:   &featured,
		CategoryID: kernel.ID(body.Category).Ptr(),
	}

	return s.updateMenuItem(ctx, menuItemId, patch)
}

// PatchMenuItem handles PATCH /menu-items/{menuItemId}.
func (s *Server) PatchMenuItem(ctx echo.Context, menuItemId int64) error {
	var body servers.PatchMenuItemJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	patch := commands.MenuItemPatch{
		Title:      body.Title,
		Featured:   body.Featured,
		CategoryID: idPtr(body.Category),
	}
	if body.Price != nil {
		price, err := parseMoney("price", *body.Price)
		if err != nil {
			return err
		}
		patch.Price = &price
	}

	return s.updateMenuItem(ctx, menuItemId, patch)
}

func (s *Server) updateMenuItem(ctx echo.Context, menuItemID int64, patch commands.MenuItemPatch) error {
	cmd, err := commands.NewUpdateMenuItemCommand(auth.PrincipalFrom(ctx), kernel.ID(menuItemID), patch)
	if err != nil {
		return err
	}

	item, err := s.updateMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, menuItemFromDomain(item))
}

// DeleteMenuItem handles DELETE /menu-items/{menuItemId}.
func (s *Server) DeleteMenuItem(ctx echo.Context, menuItemId int64) error {
	cmd, err := commands.NewDeleteMenuItemCommand(auth.PrincipalFrom(ctx), kernel.ID(menuItemId))
	if err != nil {
		return err
	}

	if err = s.deleteMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
