package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand signs up a new account. It needs no principal.
type RegisterUserCommand struct {
	registration identity.Registration

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(username, password, email string) (RegisterUserCommand, error) {
	reg, err := identity.NewRegistration(username, password, email)
	if err != nil {
		return RegisterUserCommand{}, err
	}

	return RegisterUserCommand{
		registration: reg,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Registration() identity.Registration {
	return c.registration
}
