package order_test

import (
	"testing"
	"time"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func line(t *testing.T, userID, menuItemID kernel.ID, price string, quantity int) *cart.Line {
	t.Helper()
	item, err := catalog.RestoreMenuItem(menuItemID, "Item", money(t, price), false, 1)
	require.NoError(t, err)
	l, err := cart.NewLine(userID, item, quantity)
	require.NoError(t, err)
	return l
}

func TestPlace(t *testing.T) {
	placedAt := time.Date(2026, 10, 16, 18, 30, 0, 0, time.UTC)

	t.Run("should copy a single line and total it", func(t *testing.T) {
		o, err := order.Place(7, []*cart.Line{line(t, 7, 3, "9.99", 2)}, placedAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, kernel.ID(7), o.UserID())
		assert.Nil(t, o.DeliveryCrew())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "19.98", o.Total().String())
		assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), o.Date())

		items := o.Items()
		require.Len(t, items, 1)
		assert.Equal(t, kernel.ID(3), items[0].MenuItemID())
		assert.Equal(t, 2, items[0].Quantity())
		assert.Equal(t, "9.99", items[0].UnitPrice().String())
		assert.Equal(t, "19.98", items[0].Price().String())
	})

	t.Run("total equals the sum of item prices", func(t *testing.T) {
		lines := []*cart.Line{
			line(t, 7, 1, "0.01", 1),
			line(t, 7, 2, "12.35", 3),
			line(t, 7, 3, "4.10", 7),
		}

		o, err := order.Place(7, lines, placedAt)

		require.NoError(t, err)
		require.NoError(t, o.CheckTotal())
		assert.Equal(t, "65.76", o.Total().String())
		assert.Len(t, o.Items(), 3)
	})

	t.Run("should fail on empty cart", func(t *testing.T) {
		o, err := order.Place(7, nil, placedAt)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "no items in cart")
		assert.Nil(t, o)
	})

	t.Run("should reject a foreign line", func(t *testing.T) {
		_, err := order.Place(7, []*cart.Line{line(t, 8, 3, "1.00", 1)}, placedAt)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject duplicate menu items", func(t *testing.T) {
		_, err := order.Place(7, []*cart.Line{line(t, 7, 3, "1.00", 1), line(t, 7, 3, "1.00", 2)}, placedAt)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject overflowing total", func(t *testing.T) {
		_, err := order.Place(7, []*cart.Line{line(t, 7, 1, "6000.00", 1), line(t, 7, 2, "6000.00", 1)}, placedAt)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestOrder_Apply(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.Place(7, []*cart.Line{line(t, 7, 3, "9.99", 2)}, time.Now())
		require.NoError(t, err)
		return o
	}

	t.Run("assign and deliver in one change", func(t *testing.T) {
		o := newOrder(t)
		crew := kernel.ID(9)

		require.NoError(t, o.Apply(order.Changes{
			DeliveryCrew: &crew, HasDeliveryCrew: true,
			Status: order.Delivered, HasStatus: true,
		}))

		assert.True(t, o.IsAssignedTo(9))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("assignment only", func(t *testing.T) {
		o := newOrder(t)
		crew := kernel.ID(9)

		require.NoError(t, o.Apply(order.Changes{DeliveryCrew: &crew, HasDeliveryCrew: true}))

		assert.True(t, o.IsAssignedTo(9))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("nil crew unassigns", func(t *testing.T) {
		o := newOrder(t)
		crew := kernel.ID(9)
		require.NoError(t, o.Apply(order.Changes{DeliveryCrew: &crew, HasDeliveryCrew: true}))

		require.NoError(t, o.Apply(order.Changes{HasDeliveryCrew: true}))

		assert.Nil(t, o.DeliveryCrew())
		assert.False(t, o.IsAssignedTo(9))
	})

	t.Run("absent fields are untouched", func(t *testing.T) {
		o := newOrder(t)
		crew := kernel.ID(9)
		require.NoError(t, o.Apply(order.Changes{DeliveryCrew: &crew, HasDeliveryCrew: true}))

		require.NoError(t, o.Apply(order.Changes{Status: order.Delivered, HasStatus: true}))

		assert.True(t, o.IsAssignedTo(9))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("invalid crew id is rejected without change", func(t *testing.T) {
		o := newOrder(t)
		crew := kernel.ID(0)

		err := o.Apply(order.Changes{DeliveryCrew: &crew, HasDeliveryCrew: true, Status: order.Delivered, HasStatus: true})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o.DeliveryCrew())
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("returned crew pointer is a copy", func(t *testing.T) {
		o := newOrder(t)
		crew := kernel.ID(9)
		require.NoError(t, o.Apply(order.Changes{DeliveryCrew: &crew, HasDeliveryCrew: true}))

		*o.DeliveryCrew() = 10
		crew = 11

		assert.True(t, o.IsAssignedTo(9))
	})
}

func TestRestoreOrder(t *testing.T) {
	date := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	item, err := order.RestoreItem(1, 3, 2, money(t, "9.99"), money(t, "19.98"))
	require.NoError(t, err)

	t.Run("consistent order", func(t *testing.T) {
		crew := kernel.ID(4)
		o, err := order.RestoreOrder(5, 7, &crew, order.Delivered, money(t, "19.98"), date, []*order.Item{item})

		require.NoError(t, err)
		assert.Equal(t, kernel.ID(5), o.ID())
		assert.True(t, o.IsOwnedBy(7))
		assert.False(t, o.IsOwnedBy(8))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("header only", func(t *testing.T) {
		o, err := order.RestoreOrder(5, 7, nil, order.Pending, money(t, "1.00"), date, nil)

		require.NoError(t, err)
		assert.Empty(t, o.Items())
	})

	t.Run("mismatched total", func(t *testing.T) {
		_, err := order.RestoreOrder(5, 7, nil, order.Pending, money(t, "20.00"), date, []*order.Item{item})
		require.ErrorIs(t, err, order.ErrTotalMismatch)
	})

	t.Run("invalid ids", func(t *testing.T) {
		bad := kernel.ID(-1)
		_, err := order.RestoreOrder(0, 0, &bad, order.Pending, money(t, "1.00"), date, nil)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("identity cannot be reassigned", func(t *testing.T) {
		o, err := order.RestoreOrder(5, 7, nil, order.Pending, money(t, "1.00"), date, nil)
		require.NoError(t, err)

		require.Error(t, o.SetID(6))
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Pending", order.Pending.String())
}
