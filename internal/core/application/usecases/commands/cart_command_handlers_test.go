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

func TestNewAddCartLineCommand_Quantity(t *testing.T) {
	testCases := []struct {
		raw     string
		want    int
		wantErr error
	}{
		{"2", 2, nil},
		{"2.0", 2, nil},
		{"1.5", 0, errs.ErrValueIsInvalid},
		{"-1", 0, errs.ErrValueIsOutOfRange},
		{"0", 0, errs.ErrValueIsOutOfRange},
		{"two", 0, errs.ErrValueIsInvalid},
		{"", 0, errs.ErrValueIsRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			cmd, err := commands.NewAddCartLineCommand(principal(7), 3, tc.raw)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, cmd.Quantity())
		})
	}
}

func TestAddCartLineCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddCartLineCommand(principal(7), 3, "2")
	require.NoError(t, err)

	item := menuItem(t, 3, "Greek Salad", "12.50")

	itemRepo := new(MockMenuItemRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", ctx, kernel.ID(3)).Return(item, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Add", ctx, mock.AnythingOfType("*cart.Line")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory[commands.CartUoW])
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddCartLineCommandHandler(factory)
	added, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Greek Salad", added.Title)
	assert.Equal(t, 2, added.Line.Quantity())
	assert.Equal(t, "12.50", added.Line.UnitPrice().String())
	assert.Equal(t, "25.00", added.Line.Price().String())
	itemRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddCartLineCommandHandler_Handle_DuplicateLine(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddCartLineCommand(principal(7), 3, "1")
	require.NoError(t, err)

	itemRepo := new(MockMenuItemRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MenuItemRepository").Return(itemRepo).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	itemRepo.On("Get", ctx, kernel.ID(3)).Return(menuItem(t, 3, "Greek Salad", "12.50"), nil).Once()
	cartRepo.On("Add", ctx, mock.Anything).Return(errs.NewValueIsInvalidError("menuitem")).Once()

	factory := new(MockUoWFactory[commands.CartUoW])
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddCartLineCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAddCartLineCommandHandler_Handle_UnknownMenuItem(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddCartLineCommand(principal(7), 404, "1")
	require.NoError(t, err)

	itemRepo := new(MockMenuItemRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MenuItemRepository").Return(itemRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	itemRepo.On("Get", ctx, kernel.ID(404)).Return(nil, errs.NewObjectNotFoundError("menuitem", 404)).Once()

	factory := new(MockUoWFactory[commands.CartUoW])
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddCartLineCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "CartRepository")
}

func TestAddCartLineCommandHandler_Handle_Anonymous(t *testing.T) {
	cmd, err := commands.NewAddCartLineCommand(nil, 3, "1")
	require.NoError(t, err)

	factory := new(MockUoWFactory[commands.CartUoW])
	handler := commands.NewAddCartLineCommandHandler(factory)
	_, err = handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrAuthenticationRequired)
	factory.AssertNotCalled(t, "Create")
}

func TestClearCartCommandHandler_Handle_Idempotent(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewClearCartCommand(principal(7, identity.Customer))

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("CartRepository").Return(cartRepo).Twice()
	uow.On("Commit", ctx).Return(nil).Twice()
	uow.On("Rollback", ctx).Return(nil).Twice()
	cartRepo.On("DeleteByUser", ctx, kernel.ID(7)).Return(int64(2), nil).Once()
	cartRepo.On("DeleteByUser", ctx, kernel.ID(7)).Return(int64(0), nil).Once()

	factory := new(MockUoWFactory[commands.CartUoW])
	factory.On("Create").Return(uow).Twice()

	handler := commands.NewClearCartCommandHandler(factory)

	first, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(2), first)

	second, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(0), second)

	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestClearCartCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockUoWFactory[commands.CartUoW])
	handler := commands.NewClearCartCommandHandler(factory)

	_, err := handler.Handle(t.Context(), commands.ClearCartCommand{})

	require.ErrorIs(t, err, commands.ErrClearCartCommandIsNotConstructed)
}
