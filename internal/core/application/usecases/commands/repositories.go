// Package commands contains business operations that modify system state.
// Every handler follows the same pattern: validate the command, authorize the
// principal, then do the work inside a unit of work that is committed on success
// and rolled back otherwise.
package commands

import (
	"context"

	"littlelemon/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest set of repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// CartUoW prices and stores cart lines.
	CartUoW interface {
		TxManager
		CartRepoFactory
		MenuItemRepoFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	// PlacementUoW drains a cart into a new order in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   lines, err := uow.CartRepository().LockByUser(ctx, userID)
	//   // ... place the order, add it, drain the cart
	//
	//   err = uow.Commit(ctx)
	PlacementUoW interface {
		TxManager
		CartRepoFactory
		OrderRepoFactory
	}

	PlacementUoWFactory interface {
		Create() PlacementUoW
	}

	// OrderUoW changes existing orders. The user repository checks delivery crew
	// membership on assignment.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	CatalogUoW interface {
		TxManager
		CategoryRepoFactory
		MenuItemRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	IdentityUoW interface {
		TxManager
		UserRepoFactory
	}

	IdentityUoWFactory interface {
		Create() IdentityUoW
	}
)
