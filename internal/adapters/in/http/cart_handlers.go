package http

import (
	"fmt"
	"net/http"

	"littlelemon/internal/adapters/in/http/auth"
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/generated/servers"
	"littlelemon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListCart handles GET /cart/menu-items. An empty cart is a 404.
func (s *Server) ListCart(ctx echo.Context) error {
	lines, err := s.listCartHandler.Handle(ctx.Request().Context(), queries.NewListCartQuery(auth.PrincipalFrom(ctx)))
	if err != nil {
		return err
	}

	response := make([]servers.CartLine, len(lines))
	for i, line := range lines {
		response[i] = cartLineFromView(line)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddCartLine handles POST /cart/menu-items.
func (s *Server) AddCartLine(ctx echo.Context) error {
	var body servers.AddCartLineJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	menuItemID, err := parseReference("food_id", body.FoodId)
	if err != nil {
		return err
	}
	rawQuantity, ok := scalarString(body.FoodQuantity)
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("food_quantity", errNotANumber)
	}

	cmd, err := commands.NewAddCartLineCommand(auth.PrincipalFrom(ctx), menuItemID, rawQuantity)
	if err != nil {
		return err
	}

	added, err := s.addCartLineHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Message{
		Message: fmt.Sprintf("%d %s has been added to the cart", added.Line.Quantity(), added.Title),
	})
}

// ClearCart handles DELETE /cart/menu-items. Clearing an empty cart succeeds.
func (s *Server) ClearCart(ctx echo.Context) error {
	cmd := commands.NewClearCartCommand(auth.PrincipalFrom(ctx))
	if _, err := s.clearCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.Message{Message: "All items have been deleted"})
}
