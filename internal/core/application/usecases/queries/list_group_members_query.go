package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrListGroupMembersQueryIsNotConstructed = errors.New(
	"ListGroupMembersQuery must be created via NewListGroupMembersQuery constructor",
)

type ListGroupMembersQuery struct {
	principal *identity.Principal
	role      identity.Role

	guard guard.ConstructorGuard
}

// NewListGroupMembersQuery resolves the slug through the closed group table. Unknown
// slugs are an ObjectNotFoundError.
func NewListGroupMembersQuery(principal *identity.Principal, groupSlug string) (ListGroupMembersQuery, error) {
	role, ok := identity.GroupFromSlug(groupSlug)
	if !ok {
		return ListGroupMembersQuery{}, errs.NewObjectNotFoundError("group", groupSlug)
	}
	return ListGroupMembersQuery{principal: principal, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (q ListGroupMembersQuery) Validate() error {
	return q.guard.Validate(ErrListGroupMembersQueryIsNotConstructed)
}

type UserView struct {
	ID       kernel.ID
	Username string
	Email    string
}
