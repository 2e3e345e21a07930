package identity

import (
	"fmt"
	"slices"
	"strings"

	"littlelemon/internal/pkg/errs"
)

// Role is one of the three groups known to the service.
type Role int

const (
	UnknownRole Role = iota
	Manager
	DeliveryCrew
	Customer
)

var roleNames = map[Role]string{
	Manager:      "Manager",
	DeliveryCrew: "Delivery Crew",
	Customer:     "Customer",
}

var groupSlugs = map[string]Role{
	"manager":       Manager,
	"delivery-crew": DeliveryCrew,
}

// GroupFromSlug maps a URL group segment to its role. Only manager and delivery-crew
// are manageable through the API.
func GroupFromSlug(slug string) (Role, bool) {
	r, ok := groupSlugs[slug]
	return r, ok
}

func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the display name, e.g. "Delivery Crew".
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "Unknown"
}

// RoleSet is the capability set of a principal.
type RoleSet struct {
	roles []Role
}

// NewRoleSet builds a set, dropping unknown roles and duplicates.
func NewRoleSet(roles ...Role) RoleSet {
	set := RoleSet{}
	for _, r := range roles {
		if r.Validate() != nil || slices.Contains(set.roles, r) {
			continue
		}
		set.roles = append(set.roles, r)
	}
	slices.Sort(set.roles)
	return set
}

func (s RoleSet) Has(r Role) bool {
	return slices.Contains(s.roles, r)
}

// HasAny reports whether at least one of roles is in the set.
func (s RoleSet) HasAny(roles ...Role) bool {
	for _, r := range roles {
		if s.Has(r) {
			return true
		}
	}
	return false
}

func (s RoleSet) IsEmpty() bool {
	return len(s.roles) == 0
}

func (s RoleSet) Roles() []Role {
	return slices.Clone(s.roles)
}

func (s RoleSet) String() string {
	names := make([]string, 0, len(s.roles))
	for _, r := range s.roles {
		names = append(names, r.String())
	}
	return "{" + strings.Join(names, ", ") + "}"
}
