package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
)

// RegisterUserCommandHandler creates the account and enrols it as a Customer in the
// same transaction.
type RegisterUserCommandHandler struct {
	uowFactory IdentityUoWFactory
}

func NewRegisterUserCommandHandler(uowFactory IdentityUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	id, err := userRepo.Register(ctx, cmd.Registration())
	if err != nil {
		return 0, err
	}

	if err = userRepo.AddRole(ctx, id, identity.Customer); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
