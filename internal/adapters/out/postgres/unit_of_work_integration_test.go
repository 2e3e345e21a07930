package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"littlelemon/cmd"
	postgresadapter "littlelemon/internal/adapters/out/postgres"
	"littlelemon/internal/adapters/out/postgres/pgtest"
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/ports"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	factory ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(pg.DB).WithHashCost(bcrypt.MinCost)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.CartRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.CategoryRepository())
	suite.NotNil(uow1.MenuItemRepository())
	suite.NotNil(uow1.UserRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "a second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitAndRollbackWithoutBegin() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Error(uow.Commit(ctx))
	suite.Error(uow.Rollback(ctx))
}

// Placing an order is the one multi-table write: the order, its items and the drained
// cart either all land or none of them do.
func (suite *UnitOfWorkIntegrationTestSuite) TestPlacement_CommitDrainsCartIntoOrder() {
	ctx := context.Background()
	customer := suite.pg.User(suite.T(), "alice", identity.Customer)
	mains := suite.pg.Category(suite.T(), "mains")
	pasta := suite.pg.MenuItem(suite.T(), mains, "Pasta", "9.99")
	suite.pg.CartLine(suite.T(), customer, pasta, 2)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	lines, err := uow.CartRepository().LockByUser(ctx, customer)
	suite.Require().NoError(err)
	o, err := order.Place(customer, lines, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	deleted, err := uow.CartRepository().DeleteByUser(ctx, customer)
	suite.Require().NoError(err)
	suite.Equal(int64(1), deleted)
	suite.Require().NoError(uow.Commit(ctx))

	var orders, items, cartLines int64
	suite.Require().NoError(suite.pg.DB.Table("orders").Count(&orders).Error)
	suite.Require().NoError(suite.pg.DB.Table("order_items").Count(&items).Error)
	suite.Require().NoError(suite.pg.DB.Table("cart_lines").Count(&cartLines).Error)
	suite.Equal(int64(1), orders)
	suite.Equal(int64(1), items)
	suite.Zero(cartLines)

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal("19.98", stored.Total().String())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPlacement_RollbackLeavesCartIntact() {
	ctx := context.Background()
	customer := suite.pg.User(suite.T(), "alice", identity.Customer)
	mains := suite.pg.Category(suite.T(), "mains")
	pasta := suite.pg.MenuItem(suite.T(), mains, "Pasta", "9.99")
	suite.pg.CartLine(suite.T(), customer, pasta, 1)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	lines, err := uow.CartRepository().LockByUser(ctx, customer)
	suite.Require().NoError(err)
	o, err := order.Place(customer, lines, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	_, err = uow.CartRepository().DeleteByUser(ctx, customer)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Rollback(ctx))

	var orders, cartLines int64
	suite.Require().NoError(suite.pg.DB.Table("orders").Count(&orders).Error)
	suite.Require().NoError(suite.pg.DB.Table("cart_lines").Count(&cartLines).Error)
	suite.Zero(orders)
	suite.Equal(int64(1), cartLines)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentPlacementDrainsCartOnce() {
	ctx := context.Background()
	customer := suite.pg.User(suite.T(), "alice", identity.Customer)
	mains := suite.pg.Category(suite.T(), "mains")
	suite.pg.CartLine(suite.T(), customer, suite.pg.MenuItem(suite.T(), mains, "Pasta", "9.99"), 2)
	suite.pg.CartLine(suite.T(), customer, suite.pg.MenuItem(suite.T(), mains, "Salad", "5.50"), 1)

	handler := commands.NewPlaceOrderCommandHandler(cmd.FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return suite.factory.Create()
	}))
	caller := &identity.Principal{UserID: customer, Roles: identity.NewRoleSet(identity.Customer)}

	const attempts = 2
	results := make([]error, attempts)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			placeCmd, err := commands.NewPlaceOrderCommand(caller, time.Now())
			if err != nil {
				results[i] = err
				return
			}
			_, results[i] = handler.Handle(ctx, placeCmd)
		}()
	}
	close(start)
	wg.Wait()

	var placed, missing int
	for _, err := range results {
		switch {
		case err == nil:
			placed++
		case errors.Is(err, errs.ErrObjectNotFound):
			missing++
		default:
			suite.Failf("unexpected placement error", "%v", err)
		}
	}
	suite.Equal(1, placed)
	suite.Equal(1, missing)

	var orders, items, cartLines int64
	suite.Require().NoError(suite.pg.DB.Table("orders").Count(&orders).Error)
	suite.Require().NoError(suite.pg.DB.Table("order_items").Count(&items).Error)
	suite.Require().NoError(suite.pg.DB.Table("cart_lines").Count(&cartLines).Error)
	suite.Equal(int64(1), orders)
	suite.Equal(int64(2), items)
	suite.Zero(cartLines)
}

func TestUnitOfWorkIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
