package http

import (
	"encoding/json"
	"errors"
	"strconv"

	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/generated/servers"
	"littlelemon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

var errNotANumber = errors.New("a valid number is required")

func bindBody(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return err
	}
	return ctx.Validate(body)
}

// scalarString accepts the loosely typed numeric fields clients send either as JSON
// numbers or as strings.
func scalarString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case json.Number:
		return x.String(), true
	default:
		return "", false
	}
}

func parseMoney(field string, raw any) (kernel.Money, error) {
	s, ok := scalarString(raw)
	if !ok {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(field, errNotANumber)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(field, errNotANumber)
	}
	m, err := kernel.NewMoney(d)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return m, nil
}

func parseReference(field string, raw any) (kernel.ID, error) {
	s, ok := scalarString(raw)
	if !ok {
		return 0, errs.NewValueIsInvalidErrorWithCause(field, errNotANumber)
	}
	id, err := kernel.ParseID(s)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return id, nil
}

func idPtr(v *int64) *kernel.ID {
	if v == nil {
		return nil
	}
	return kernel.ID(*v).Ptr()
}

func int64Ptr(id *kernel.ID) *int64 {
	if id == nil {
		return nil
	}
	v := id.Int64()
	return &v
}

// pageLinks builds absolute next and previous URLs from the current request, keeping
// every other query parameter.
func pageLinks[T any](ctx echo.Context, paged queries.Paged[T]) (next, previous *string) {
	if paged.HasNext() {
		next = pageURL(ctx, paged.Page.Number+1)
	}
	if paged.HasPrevious() {
		previous = pageURL(ctx, paged.Page.Number-1)
	}
	return next, previous
}

func pageURL(ctx echo.Context, number int) *string {
	u := *ctx.Request().URL
	u.Scheme = ctx.Scheme()
	u.Host = ctx.Request().Host

	q := u.Query()
	if number <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(number))
	}
	u.RawQuery = q.Encode()

	link := u.String()
	return &link
}

func categoryFromView(v queries.CategoryView) servers.Category {
	return servers.Category{Id: v.ID.Int64(), Slug: v.Slug, Title: v.Title}
}

func categoryFromDomain(c *catalog.Category) servers.Category {
	return servers.Category{Id: c.ID().Int64(), Slug: c.Slug(), Title: c.Title()}
}

func menuItemFromView(v queries.MenuItemView) servers.MenuItem {
	return servers.MenuItem{
		Id:       v.ID.Int64(),
		Title:    v.Title,
		Price:    v.Price.StringFixed(2),
		Featured: v.Featured,
		Category: v.Category.Int64(),
	}
}

func menuItemFromDomain(m *catalog.MenuItem) servers.MenuItem {
	return servers.MenuItem{
		Id:       m.ID().Int64(),
		Title:    m.Title(),
		Price:    m.Price().String(),
		Featured: m.Featured(),
		Category: m.CategoryID().Int64(),
	}
}

func cartLineFromView(v queries.CartLineView) servers.CartLine {
	return servers.CartLine{
		Id:        v.ID.Int64(),
		User:      v.User.Int64(),
		Menuitem:  v.MenuItem.Int64(),
		Quantity:  v.Quantity,
		UnitPrice: v.UnitPrice.StringFixed(2),
		Price:     v.Price.StringFixed(2),
	}
}

func orderItemFromView(v queries.OrderItemView) servers.OrderItem {
	return servers.OrderItem{
		Id:        v.ID.Int64(),
		Order:     v.Order.Int64(),
		Menuitem:  v.MenuItem.Int64(),
		Quantity:  v.Quantity,
		UnitPrice: v.UnitPrice.StringFixed(2),
		Price:     v.Price.StringFixed(2),
	}
}

func orderFromView(v queries.OrderView) servers.Order {
	items := make([]servers.OrderItem, len(v.Items))
	for i, item := range v.Items {
		items[i] = orderItemFromView(item)
	}
	return servers.Order{
		Id:           v.ID.Int64(),
		User:         v.User.Int64(),
		DeliveryCrew: int64Ptr(v.DeliveryCrew),
		Status:       v.Status,
		Total:        v.Total.StringFixed(2),
		Date:         openapi_types.Date{Time: v.Date},
		OrderItems:   items,
	}
}

func orderFromDomain(o *order.Order) servers.Order {
	items := make([]servers.OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, servers.OrderItem{
			Id:        item.ID().Int64(),
			Order:     o.ID().Int64(),
			Menuitem:  item.MenuItemID().Int64(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().String(),
			Price:     item.Price().String(),
		})
	}
	return servers.Order{
		Id:           o.ID().Int64(),
		User:         o.UserID().Int64(),
		DeliveryCrew: int64Ptr(o.DeliveryCrew()),
		Status:       bool(o.Status()),
		Total:        o.Total().String(),
		Date:         openapi_types.Date{Time: o.Date()},
		OrderItems:   items,
	}
}
