package pgtest

import (
	"context"
	"testing"
	"time"

	"littlelemon/internal/adapters/out/postgres/cartrepo"
	"littlelemon/internal/adapters/out/postgres/catalogrepo"
	"littlelemon/internal/adapters/out/postgres/orderrepo"
	"littlelemon/internal/adapters/out/postgres/userrepo"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Password is the password of every user created by User.
const Password = "lemon-pass"

// User registers username with the given roles and returns its id.
func (d *Database) User(t testing.TB, username string, roles ...identity.Role) kernel.ID {
	t.Helper()
	ctx := context.Background()
	repo := userrepo.NewGormUserRepository(d.DB).WithHashCost(bcrypt.MinCost)

	reg, err := identity.NewRegistration(username, Password, username+"@littlelemon.test")
	require.NoError(t, err)
	id, err := repo.Register(ctx, reg)
	require.NoError(t, err)
	for _, r := range roles {
		require.NoError(t, repo.AddRole(ctx, id, r))
	}
	return id
}

// Category creates a category with the given slug.
func (d *Database) Category(t testing.TB, slug string) *catalog.Category {
	t.Helper()
	c, err := catalog.NewCategory(slug, slug)
	require.NoError(t, err)
	require.NoError(t, catalogrepo.NewGormCategoryRepository(d.DB).Add(context.Background(), c))
	return c
}

// MenuItem creates a menu item priced at price in category.
func (d *Database) MenuItem(t testing.TB, category *catalog.Category, title, price string) *catalog.MenuItem {
	t.Helper()
	p, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	m, err := catalog.NewMenuItem(title, p, false, category.ID())
	require.NoError(t, err)
	require.NoError(t, catalogrepo.NewGormMenuItemRepository(d.DB).Add(context.Background(), m))
	return m
}

// CartLine puts quantity of item into the cart of userID.
func (d *Database) CartLine(t testing.TB, userID kernel.ID, item *catalog.MenuItem, quantity int) *cart.Line {
	t.Helper()
	l, err := cart.NewLine(userID, item, quantity)
	require.NoError(t, err)
	require.NoError(t, cartrepo.NewGormCartRepository(d.DB).Add(context.Background(), l))
	return l
}

// Order places an order for userID over the given menu items, one of each, dated on.
func (d *Database) Order(t testing.TB, userID kernel.ID, on time.Time, items ...*catalog.MenuItem) *order.Order {
	t.Helper()
	lines := make([]*cart.Line, 0, len(items))
	for i, item := range items {
		l, err := cart.NewLine(userID, item, 1)
		require.NoError(t, err)
		require.NoError(t, l.SetID(kernel.ID(i+1)))
		lines = append(lines, l)
	}
	o, err := order.Place(userID, lines, on)
	require.NoError(t, err)
	require.NoError(t, orderrepo.NewGormOrderRepository(d.DB).Add(context.Background(), o))
	return o
}

// Assign sets the delivery crew and status of an order directly.
func (d *Database) Assign(t testing.TB, o *order.Order, crewID *kernel.ID, status order.Status) {
	t.Helper()
	require.NoError(t, o.Apply(order.Changes{
		DeliveryCrew: crewID, HasDeliveryCrew: true, Status: status, HasStatus: true,
	}))
	require.NoError(t, orderrepo.NewGormOrderRepository(d.DB).Update(context.Background(), o))
}
