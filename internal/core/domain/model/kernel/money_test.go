package kernel_test

import (
	"testing"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("accepts two decimal places", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("9.99"))

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "9.99", m.String())
	})

	t.Run("pads whole amounts", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromInt(3))

		require.NoError(t, err)
		assert.Equal(t, "3.00", m.String())
	})

	t.Run("rejects extra precision", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("1.005"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects negative and oversized amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("-0.01"))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = kernel.NewMoney(decimal.RequireFromString("10000.00"))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var m kernel.Money
		require.ErrorIs(t, m.Validate(), kernel.ErrMoneyIsNotConstructed)
	})
}

func TestNewPrice(t *testing.T) {
	_, err := kernel.NewPrice(decimal.Zero)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	p, err := kernel.NewPrice(kernel.MinPrice)
	require.NoError(t, err)
	assert.Equal(t, "0.01", p.String())
}

func TestMoney_Arithmetic(t *testing.T) {
	unit, err := kernel.MoneyFromString("9.99")
	require.NoError(t, err)

	t.Run("times quantity", func(t *testing.T) {
		line, err := unit.Times(2)

		require.NoError(t, err)
		assert.Equal(t, "19.98", line.String())
	})

	t.Run("add accumulates exactly", func(t *testing.T) {
		total := kernel.Zero()
		for range 3 {
			total, err = total.Add(unit)
			require.NoError(t, err)
		}

		expected, err := kernel.MoneyFromString("29.97")
		require.NoError(t, err)
		assert.True(t, total.IsEqual(expected))
	})

	t.Run("overflow is rejected", func(t *testing.T) {
		_, err := unit.Times(1001)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("parse rejects garbage", func(t *testing.T) {
		_, err := kernel.MoneyFromString("ten")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
