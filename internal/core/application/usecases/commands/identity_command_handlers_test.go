package commands_test

import (
	"testing"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddGroupMemberCommand(t *testing.T) {
	cmd, err := commands.NewAddGroupMemberCommand(nil, "delivery-crew", " mario ", "secret")
	require.NoError(t, err)
	assert.Equal(t, identity.DeliveryCrew, cmd.Role())
	assert.Equal(t, "mario", cmd.Credentials().Username)

	_, err = commands.NewAddGroupMemberCommand(nil, "customer", "mario", "secret")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = commands.NewAddGroupMemberCommand(nil, "manager", "", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAddGroupMemberCommandHandler_Handle(t *testing.T) {
	t.Run("should enrol after checking credentials", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewAddGroupMemberCommand(principal(1, identity.Manager), "delivery-crew", "mario", "secret")
		require.NoError(t, err)

		member := principal(7)
		userRepo := new(MockUserRepository)
		uow := new(MockUoW)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("UserRepository").Return(userRepo).Once(),
			userRepo.On("Authenticate", ctx, cmd.Credentials()).Return(member, nil).Once(),
			userRepo.On("AddRole", ctx, kernel.ID(7), identity.DeliveryCrew).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockUoWFactory[commands.IdentityUoW])
		factory.On("Create").Return(uow).Once()

		handler := commands.NewAddGroupMemberCommandHandler(factory)
		added, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, kernel.ID(7), added.UserID)
		userRepo.AssertExpectations(t)
	})

	t.Run("should not enrol on wrong password", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewAddGroupMemberCommand(principal(1, identity.Manager), "manager", "mario", "wrong")
		require.NoError(t, err)

		userRepo := new(MockUserRepository)
		uow := new(MockUoW)

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("UserRepository").Return(userRepo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		userRepo.On("Authenticate", ctx, cmd.Credentials()).
			Return(nil, errs.NewValueIsInvalidError("credentials")).Once()

		factory := new(MockUoWFactory[commands.IdentityUoW])
		factory.On("Create").Return(uow).Once()

		handler := commands.NewAddGroupMemberCommandHandler(factory)
		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		userRepo.AssertNotCalled(t, "AddRole", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should forbid delivery crew", func(t *testing.T) {
		cmd, err := commands.NewAddGroupMemberCommand(principal(2, identity.DeliveryCrew), "manager", "mario", "x")
		require.NoError(t, err)

		factory := new(MockUoWFactory[commands.IdentityUoW])
		handler := commands.NewAddGroupMemberCommandHandler(factory)
		_, err = handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestRemoveGroupMemberCommandHandler_Handle_UnknownUser(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRemoveGroupMemberCommand(principal(1, identity.Manager), "manager", 404)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	userRepo.On("Principal", ctx, kernel.ID(404)).Return(nil, errs.NewObjectNotFoundError("user", 404)).Once()

	factory := new(MockUoWFactory[commands.IdentityUoW])
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRemoveGroupMemberCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	userRepo.AssertNotCalled(t, "RemoveRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestRemoveGroupMemberCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRemoveGroupMemberCommand(principal(1, identity.Manager), "delivery-crew", 7)
	require.NoError(t, err)

	member := principal(7, identity.DeliveryCrew)
	member.Username = "bob"

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Principal", ctx, kernel.ID(7)).Return(member, nil).Once(),
		userRepo.On("RemoveRole", ctx, kernel.ID(7), identity.DeliveryCrew).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory[commands.IdentityUoW])
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRemoveGroupMemberCommandHandler(factory)
	removed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, "bob", removed.Username)
	uow.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_EnrolsCustomer(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand("anna", "s3cret!", "anna@example.com")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Register", ctx, cmd.Registration()).Return(kernel.ID(12), nil).Once(),
		userRepo.On("AddRole", ctx, kernel.ID(12), identity.Customer).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory[commands.IdentityUoW])
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterUserCommandHandler(factory)
	id, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(12), id)
	uow.AssertExpectations(t)
}

func TestNewRegisterUserCommand_InvalidEmail(t *testing.T) {
	_, err := commands.NewRegisterUserCommand("anna", "s3cret!", "not-an-email")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
