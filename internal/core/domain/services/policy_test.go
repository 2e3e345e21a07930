package services_test

import (
	"testing"
	"time"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func principal(id kernel.ID, roles ...identity.Role) *identity.Principal {
	return &identity.Principal{UserID: id, Username: "u" + id.String(), Roles: identity.NewRoleSet(roles...)}
}

func placedOrder(t *testing.T, owner kernel.ID, crew *kernel.ID) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(1, owner, crew, order.Pending, kernel.Zero(), time.Now(), nil)
	require.NoError(t, err)
	return o
}

func TestPolicy_Authorize_Orders(t *testing.T) {
	policy := services.NewPolicy()

	manager := principal(1, identity.Manager)
	crew := principal(2, identity.DeliveryCrew)
	customer := principal(3, identity.Customer)
	roleless := principal(4)

	testCases := []struct {
		name      string
		principal *identity.Principal
		op        services.Operation
		wantErr   error
	}{
		{"anonymous cannot list orders", nil, services.ListOrders, errs.ErrAuthenticationRequired},
		{"roleless user is unauthorized", roleless, services.ListOrders, errs.ErrUnauthorized},
		{"roleless user cannot place", roleless, services.PlaceOrder, errs.ErrUnauthorized},
		{"manager lists", manager, services.ListOrders, nil},
		{"crew lists", crew, services.ListOrders, nil},
		{"customer lists", customer, services.ListOrders, nil},
		{"customer places", customer, services.PlaceOrder, nil},
		{"manager cannot place", manager, services.PlaceOrder, errs.ErrForbidden},
		{"manager cannot view items", manager, services.ViewOrderItems, errs.ErrForbidden},
		{"manager replaces", manager, services.ReplaceOrder, nil},
		{"crew cannot replace", crew, services.ReplaceOrder, errs.ErrForbidden},
		{"customer cannot patch", customer, services.PatchOrder, errs.ErrForbidden},
		{"manager deletes", manager, services.DeleteOrder, nil},
		{"crew cannot delete", crew, services.DeleteOrder, errs.ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := policy.Authorize(tc.principal, tc.op, services.Resource{})
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestPolicy_Authorize_Ownership(t *testing.T) {
	policy := services.NewPolicy()

	t.Run("customer views own order", func(t *testing.T) {
		res := services.Resource{Order: placedOrder(t, 3, nil)}
		require.NoError(t, policy.Authorize(principal(3, identity.Customer), services.ViewOrderItems, res))
	})

	t.Run("customer cannot view a foreign order", func(t *testing.T) {
		res := services.Resource{Order: placedOrder(t, 9, nil)}
		err := policy.Authorize(principal(3, identity.Customer), services.ViewOrderItems, res)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("crew patches assigned order", func(t *testing.T) {
		res := services.Resource{Order: placedOrder(t, 3, kernel.ID(2).Ptr())}
		require.NoError(t, policy.Authorize(principal(2, identity.DeliveryCrew), services.PatchOrder, res))
	})

	t.Run("crew cannot patch an order of another crew", func(t *testing.T) {
		res := services.Resource{Order: placedOrder(t, 3, kernel.ID(8).Ptr())}
		err := policy.Authorize(principal(2, identity.DeliveryCrew), services.PatchOrder, res)
		require.ErrorIs(t, err, errs.ErrOwnershipMismatch)
	})

	t.Run("crew cannot patch an unassigned order", func(t *testing.T) {
		res := services.Resource{Order: placedOrder(t, 3, nil)}
		err := policy.Authorize(principal(2, identity.DeliveryCrew), services.PatchOrder, res)
		require.ErrorIs(t, err, errs.ErrOwnershipMismatch)
	})

	t.Run("manager patches any order", func(t *testing.T) {
		res := services.Resource{Order: placedOrder(t, 3, kernel.ID(8).Ptr())}
		require.NoError(t, policy.Authorize(principal(1, identity.Manager), services.PatchOrder, res))
	})
}

func TestPolicy_Authorize_Catalog(t *testing.T) {
	policy := services.NewPolicy()

	t.Run("anonymous reads", func(t *testing.T) {
		require.NoError(t, policy.Authorize(nil, services.ListCategories, services.Resource{}))
		require.NoError(t, policy.Authorize(nil, services.ListMenuItems, services.Resource{}))
	})

	t.Run("anonymous write requires authentication", func(t *testing.T) {
		err := policy.Authorize(nil, services.CreateMenuItem, services.Resource{})
		require.ErrorIs(t, err, errs.ErrAuthenticationRequired)
	})

	t.Run("manager writes menu items", func(t *testing.T) {
		m := principal(1, identity.Manager)
		for _, op := range []services.Operation{services.CreateMenuItem, services.UpdateMenuItem, services.DeleteMenuItem} {
			assert.NoError(t, policy.Authorize(m, op, services.Resource{}), op.String())
		}
	})

	t.Run("customer without permission is forbidden", func(t *testing.T) {
		err := policy.Authorize(principal(3, identity.Customer), services.UpdateMenuItem, services.Resource{})
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("model permission grants the matching write only", func(t *testing.T) {
		p := principal(5)
		p.Permissions = []identity.Permission{identity.ChangeMenuItem}

		require.NoError(t, policy.Authorize(p, services.UpdateMenuItem, services.Resource{}))
		require.ErrorIs(t, policy.Authorize(p, services.DeleteMenuItem, services.Resource{}), errs.ErrForbidden)
	})

	t.Run("staff creates categories", func(t *testing.T) {
		p := principal(5)
		p.Staff = true
		require.NoError(t, policy.Authorize(p, services.CreateCategory, services.Resource{}))
	})
}

func TestPolicy_Authorize_Groups(t *testing.T) {
	policy := services.NewPolicy()

	require.ErrorIs(t, policy.Authorize(nil, services.ManageGroups, services.Resource{}), errs.ErrAuthenticationRequired)
	require.ErrorIs(t,
		policy.Authorize(principal(2, identity.DeliveryCrew), services.ManageGroups, services.Resource{}),
		errs.ErrForbidden)
	require.NoError(t, policy.Authorize(principal(1, identity.Manager), services.ManageGroups, services.Resource{}))

	staff := principal(6)
	staff.Staff = true
	require.NoError(t, policy.Authorize(staff, services.ManageGroups, services.Resource{}))
}

func TestPolicy_Scope(t *testing.T) {
	policy := services.NewPolicy()

	testCases := []struct {
		name  string
		roles []identity.Role
		scope services.OrderScope
	}{
		{"manager sees all", []identity.Role{identity.Manager}, services.AllOrders},
		{"crew sees assigned", []identity.Role{identity.DeliveryCrew}, services.AssignedOrders},
		{"customer sees own", []identity.Role{identity.Customer}, services.OwnOrders},
		{"manager wins over crew", []identity.Role{identity.DeliveryCrew, identity.Manager}, services.AllOrders},
		{"crew wins over customer", []identity.Role{identity.Customer, identity.DeliveryCrew}, services.AssignedOrders},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			scope, err := policy.Scope(principal(1, tc.roles...))
			require.NoError(t, err)
			assert.Equal(t, tc.scope, scope)
		})
	}

	t.Run("roleless user has no scope", func(t *testing.T) {
		_, err := policy.Scope(principal(1))
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}
