package services

import (
	"fmt"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"
)

// Operation enumerates the guarded use cases.
type Operation int

const (
	ListCategories Operation = iota + 1
	CreateCategory
	ListMenuItems
	CreateMenuItem
	UpdateMenuItem
	DeleteMenuItem
	ManageGroups
	UseCart
	ListOrders
	PlaceOrder
	ViewOrderItems
	ReplaceOrder
	PatchOrder
	DeleteOrder
)

var operationNames = map[Operation]string{
	ListCategories: "list categories",
	CreateCategory: "create category",
	ListMenuItems:  "list menu items",
	CreateMenuItem: "create menu item",
	UpdateMenuItem: "update menu item",
	DeleteMenuItem: "delete menu item",
	ManageGroups:   "manage groups",
	UseCart:        "use cart",
	ListOrders:     "list orders",
	PlaceOrder:     "place order",
	ViewOrderItems: "view order items",
	ReplaceOrder:   "replace order",
	PatchOrder:     "patch order",
	DeleteOrder:    "delete order",
}

func (op Operation) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}
	return fmt.Sprintf("operation(%d)", int(op))
}

// Resource carries what the policy needs to judge ownership. Order is nil for
// collection-level checks.
type Resource struct {
	Order *order.Order
}

// OrderScope is the slice of orders a principal may list.
type OrderScope int

const (
	AllOrders OrderScope = iota + 1
	AssignedOrders
	OwnOrders
)

const (
	reasonNotAllowed   = "you are not authorized to do this operation"
	reasonNoRole       = "user without a role"
	reasonNoCredential = "authentication credentials were not provided"
)

// Policy is the authorization policy of the service. The zero value is ready to use.
type Policy struct{}

func NewPolicy() Policy {
	return Policy{}
}

// Authorize returns nil when p may perform op on res, otherwise an *errs.AccessError
// whose Kind is ErrAuthenticationRequired, ErrUnauthorized, ErrForbidden or
// ErrOwnershipMismatch. Operations without an explicit rule are forbidden.
func (Policy) Authorize(p *identity.Principal, op Operation, res Resource) error {
	switch op {
	case ListCategories, ListMenuItems:
		return nil
	case CreateCategory:
		return authorizeCatalogWrite(p, p.Has(identity.Manager) || (p.IsAuthenticated() && p.Staff), identity.AddCategory)
	case CreateMenuItem:
		return authorizeCatalogWrite(p, p.Has(identity.Manager), identity.AddMenuItem)
	case UpdateMenuItem:
		return authorizeCatalogWrite(p, p.Has(identity.Manager), identity.ChangeMenuItem)
	case DeleteMenuItem:
		return authorizeCatalogWrite(p, p.Has(identity.Manager), identity.DeleteMenuItem)
	case ManageGroups:
		if !p.IsAuthenticated() {
			return errs.NewAuthenticationRequiredError(reasonNoCredential)
		}
		if p.Has(identity.Manager) || p.Staff {
			return nil
		}
		return errs.NewForbiddenError(reasonNotAllowed)
	case UseCart:
		if !p.IsAuthenticated() {
			return errs.NewAuthenticationRequiredError(reasonNoCredential)
		}
		return nil
	case ListOrders, PlaceOrder, ViewOrderItems, ReplaceOrder, PatchOrder, DeleteOrder:
		return authorizeOrder(p, op, res)
	default:
		return errs.NewForbiddenError(reasonNotAllowed)
	}
}

// Scope picks the orders visible to p by role precedence Manager, Delivery Crew, Customer.
func (pol Policy) Scope(p *identity.Principal) (OrderScope, error) {
	if err := pol.Authorize(p, ListOrders, Resource{}); err != nil {
		return 0, err
	}
	switch {
	case p.Has(identity.Manager):
		return AllOrders, nil
	case p.Has(identity.DeliveryCrew):
		return AssignedOrders, nil
	default:
		return OwnOrders, nil
	}
}

// authorizeCatalogWrite follows the read-mostly scheme: bypass for privileged callers,
// otherwise anonymous callers must authenticate and others need the model permission.
func authorizeCatalogWrite(p *identity.Principal, bypass bool, perm identity.Permission) error {
	if bypass {
		return nil
	}
	if !p.IsAuthenticated() {
		return errs.NewAuthenticationRequiredError(reasonNoCredential)
	}
	if p.Can(perm) {
		return nil
	}
	return errs.NewForbiddenError(reasonNotAllowed)
}

func authorizeOrder(p *identity.Principal, op Operation, res Resource) error {
	if !p.IsAuthenticated() {
		return errs.NewAuthenticationRequiredError(reasonNoCredential)
	}
	if !p.Roles.HasAny(identity.Manager, identity.DeliveryCrew, identity.Customer) {
		return errs.NewUnauthorizedError(reasonNoRole)
	}

	switch op {
	case ListOrders:
		return nil
	case PlaceOrder:
		if p.Has(identity.Customer) {
			return nil
		}
	case ViewOrderItems:
		if !p.Has(identity.Customer) {
			break
		}
		if res.Order != nil && !res.Order.IsOwnedBy(p.UserID) {
			return errs.NewForbiddenError("this order belongs to another user")
		}
		return nil
	case ReplaceOrder, DeleteOrder:
		if p.Has(identity.Manager) {
			return nil
		}
	case PatchOrder:
		if p.Has(identity.Manager) {
			return nil
		}
		if !p.Has(identity.DeliveryCrew) {
			break
		}
		if res.Order != nil && !res.Order.IsAssignedTo(p.UserID) {
			return errs.NewOwnershipMismatchError("this order belongs to the other delivery crew")
		}
		return nil
	}

	return errs.NewForbiddenError(reasonNotAllowed)
}
