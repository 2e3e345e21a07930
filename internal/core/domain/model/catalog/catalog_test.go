package catalog_test

import (
	"strings"
	"testing"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("valid category", func(t *testing.T) {
		c, err := catalog.NewCategory("main-course", "Main Course")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "main-course", c.Slug())
		assert.Equal(t, "Main Course", c.Title())
		assert.Equal(t, kernel.ID(0), c.ID())
	})

	t.Run("collects all field errors", func(t *testing.T) {
		_, err := catalog.NewCategory("not a slug", "  ")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("title too long", func(t *testing.T) {
		_, err := catalog.NewCategory("x", strings.Repeat("a", 256))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("identity is set once", func(t *testing.T) {
		c, err := catalog.RestoreCategory(2, "desserts", "Desserts")
		require.NoError(t, err)

		require.Error(t, c.SetID(3))
		assert.Equal(t, kernel.ID(2), c.ID())
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var c *catalog.Category
		require.ErrorIs(t, c.Validate(), catalog.ErrCategoryIsNotConstructed)
	})
}

func TestNewMenuItem(t *testing.T) {
	price, err := kernel.MoneyFromString("9.99")
	require.NoError(t, err)

	t.Run("valid item", func(t *testing.T) {
		m, err := catalog.NewMenuItem("Lemon Dessert", price, true, 1)

		require.NoError(t, err)
		assert.Equal(t, "Lemon Dessert", m.Title())
		assert.True(t, m.Price().IsEqual(price))
		assert.True(t, m.Featured())
		assert.Equal(t, kernel.ID(1), m.CategoryID())
	})

	t.Run("price below minimum", func(t *testing.T) {
		_, err := catalog.NewMenuItem("Water", kernel.Zero(), false, 1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("missing price and category", func(t *testing.T) {
		_, err := catalog.NewMenuItem("Water", kernel.Money{}, false, 0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("update keeps state on failure", func(t *testing.T) {
		m, err := catalog.RestoreMenuItem(4, "Bruschetta", price, false, 2)
		require.NoError(t, err)

		require.Error(t, m.Update("", price, true, 2))
		assert.Equal(t, "Bruschetta", m.Title())
		assert.False(t, m.Featured())
	})
}
