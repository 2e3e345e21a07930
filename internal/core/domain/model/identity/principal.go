package identity

import (
	"slices"

	"littlelemon/internal/core/domain/model/kernel"
)

// Permission is a model-level grant such as "add_menuitem".
type Permission string

const (
	AddCategory    Permission = "add_category"
	AddMenuItem    Permission = "add_menuitem"
	ChangeMenuItem Permission = "change_menuitem"
	DeleteMenuItem Permission = "delete_menuitem"
)

// Principal is the caller of a request. A nil *Principal is an anonymous caller.
type Principal struct {
	UserID      kernel.ID
	Username    string
	Roles       RoleSet
	Staff       bool
	Permissions []Permission
}

func (p *Principal) IsAuthenticated() bool {
	return p != nil && p.UserID.Validate() == nil
}

// Can reports whether the principal holds the model-level permission.
func (p *Principal) Can(perm Permission) bool {
	return p.IsAuthenticated() && slices.Contains(p.Permissions, perm)
}

// Has is a nil-safe shortcut for p.Roles.Has.
func (p *Principal) Has(r Role) bool {
	return p.IsAuthenticated() && p.Roles.Has(r)
}
