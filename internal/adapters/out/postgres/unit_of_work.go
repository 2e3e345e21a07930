// Package postgres implements the unit of work over GORM transactions and hosts the
// schema bootstrap for the ordering tables.
//
// Usage:
//
//	uow := NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	lines, err := uow.CartRepository().LockByUser(ctx, userID)
//	// ...
//	return uow.Commit(ctx)
//
// Repositories obtained before Begin run on the plain connection, so always call
// Begin first when the writes must be atomic.
package postgres

import (
	"context"

	"littlelemon/internal/adapters/out/postgres/cartrepo"
	"littlelemon/internal/adapters/out/postgres/catalogrepo"
	"littlelemon/internal/adapters/out/postgres/orderrepo"
	"littlelemon/internal/adapters/out/postgres/userrepo"
	"littlelemon/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory hands out a fresh unit of work per business operation.
type GormUnitOfWorkFactory struct {
	db       *gorm.DB
	hashCost int
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// WithHashCost sets the bcrypt cost used by the user repositories it creates. Tests
// lower it to keep registration fast.
func (f *GormUnitOfWorkFactory) WithHashCost(cost int) *GormUnitOfWorkFactory {
	f.hashCost = cost
	return f
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:       f.db,
		hashCost: f.hashCost,
	}
}

// GormUnitOfWork is not safe for concurrent use; create one per operation.
type GormUnitOfWork struct {
	db       *gorm.DB
	tx       *gorm.DB
	hashCost int
}

// Begin starts the transaction. Calling it again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is open, which
// makes a deferred Rollback after a successful Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) CartRepository() ports.CartRepository {
	return cartrepo.NewGormCartRepository(uow.conn())
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) CategoryRepository() ports.CategoryRepository {
	return catalogrepo.NewGormCategoryRepository(uow.conn())
}

func (uow *GormUnitOfWork) MenuItemRepository() ports.MenuItemRepository {
	return catalogrepo.NewGormMenuItemRepository(uow.conn())
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	repo := userrepo.NewGormUserRepository(uow.conn())
	if uow.hashCost > 0 {
		repo = repo.WithHashCost(uow.hashCost)
	}
	return repo
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
