package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"littlelemon/internal/adapters/in/http/auth"
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /orders. The visible orders depend on the caller's role.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	page, err := s.page(params.Page)
	if err != nil {
		return err
	}

	filter := queries.OrderFilter{
		ID:           idPtr(params.Id),
		Status:       params.Status,
		User:         idPtr(params.User),
		DeliveryCrew: idPtr(params.DeliveryCrew),
	}
	if params.Date != nil {
		date := params.Date.Time
		filter.Date = &date
	}

	ordering := ""
	if params.Ordering != nil {
		ordering = *params.Ordering
	}

	query := queries.NewListOrdersQuery(auth.PrincipalFrom(ctx), filter, ordering, page)
	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := servers.OrderPage{
		Count:   result.Count,
		Results: make([]servers.Order, len(result.Results)),
	}
	response.Next, response.Previous = pageLinks(ctx, result)
	for i, o := range result.Results {
		response.Results[i] = orderFromView(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /orders by draining the caller's cart into a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	cmd, err := commands.NewPlaceOrderCommand(auth.PrincipalFrom(ctx), s.now())
	if err != nil {
		return err
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(placed))
}

// GetOrder handles GET /orders/{orderId}, returning the items of the caller's order.
func (s *Server) GetOrder(ctx echo.Context, orderId int64) error {
	query, err := queries.NewGetOrderItemsQuery(auth.PrincipalFrom(ctx), kernel.ID(orderId))
	if err != nil {
		return err
	}

	items, err := s.getOrderItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.OrderItem, len(items))
	for i, item := range items {
		response[i] = orderItemFromView(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReplaceOrder handles PUT /orders/{orderId}.
func (s *Server) ReplaceOrder(ctx echo.Context, orderId int64) error {
	var body servers.ReplaceOrderJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	record := commands.OrderRecord{
		DeliveryCrew: idPtr(body.DeliveryCrew),
		Status:       order.Status(body.Status),
		User:         idPtr(body.User),
	}
	if body.Total != nil {
		total, err := parseMoney("total", *body.Total)
		if err != nil {
			return err
		}
		record.Total = &total
	}
	if body.Date != nil {
		date := body.Date.Time
		record.Date = &date
	}

	cmd, err := commands.NewReplaceOrderCommand(auth.PrincipalFrom(ctx), kernel.ID(orderId), record)
	if err != nil {
		return err
	}

	updated, err := s.replaceOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// PatchOrder handles PATCH /orders/{orderId}. An explicit null delivery_crew unassigns
// the order, an absent one leaves it unchanged.
func (s *Server) PatchOrder(ctx echo.Context, orderId int64) error {
	var body servers.PatchOrderJSONRequestBody
	present, err := bindPartial(ctx, &body)
	if err != nil {
		return err
	}

	changes := order.Changes{
		DeliveryCrew: idPtr(body.DeliveryCrew),
	}
	_, changes.HasDeliveryCrew = present["delivery_crew"]
	if body.Status != nil {
		changes.Status = order.Status(*body.Status)
		changes.HasStatus = true
	}

	cmd, err := commands.NewPatchOrderCommand(auth.PrincipalFrom(ctx), kernel.ID(orderId), changes)
	if err != nil {
		return err
	}

	updated, err := s.patchOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// DeleteOrder handles DELETE /orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderId int64) error {
	cmd, err := commands.NewDeleteOrderCommand(auth.PrincipalFrom(ctx), kernel.ID(orderId))
	if err != nil {
		return err
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.Message{
		Message: fmt.Sprintf("The order with id %d has been successfully deleted", orderId),
	})
}

// bindPartial decodes a JSON body into body and reports which top level keys were
// sent, so that an explicit null can be told apart from an omitted field.
func bindPartial(ctx echo.Context, body any) (map[string]json.RawMessage, error) {
	raw, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unable to read request body").SetInternal(err)
	}

	present := make(map[string]json.RawMessage)
	if len(raw) > 0 {
		if err = json.Unmarshal(raw, &present); err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "request body must be a JSON object").SetInternal(err)
		}
		if err = json.Unmarshal(raw, body); err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "request body has invalid field types").SetInternal(err)
		}
	}

	return present, ctx.Validate(body)
}
