package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

type CreateCategoryCommand struct {
	principal *identity.Principal
	slug      string
	title     string

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand does not validate slug and title; the catalog model does.
func NewCreateCategoryCommand(principal *identity.Principal, slug, title string) CreateCategoryCommand {
	return CreateCategoryCommand{
		principal: principal,
		slug:      slug,
		title:     title,
		guard:     guard.NewConstructorGuard(),
	}
}

func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

func (c CreateCategoryCommand) Principal() *identity.Principal { return c.principal }
func (c CreateCategoryCommand) Slug() string                   { return c.slug }
func (c CreateCategoryCommand) Title() string                  { return c.title }
