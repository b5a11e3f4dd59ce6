package commands_test

import (
	"errors"
	"testing"

	"cargoflow/internal/core/application/usecases/commands"
	"cargoflow/internal/core/domain/model/cargo"
	"cargoflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateCargoCommand(t *testing.T) commands.CreateCargoCommand {
	t.Helper()
	cmd, err := commands.NewCreateCargoCommand(
		kernel.NewUUID(), kernel.NewUUID(), cargo.PriorityNormal, 100, 25, "+15550001111",
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateCargoCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCargoCommand(t)

	cargoRepo := new(MockCargoRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CargoRepository").Return(cargoRepo).Once(),
		cargoRepo.On("Add", ctx, mock.AnythingOfType("*cargo.Cargo")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCargoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateCargoCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// The stored cargo starts its lifecycle in pending
	addCall := cargoRepo.Calls[0]
	stored := addCall.Arguments[1].(*cargo.Cargo)
	assert.Equal(t, cargo.Pending, stored.Status())
	assert.Equal(t, cmd.CargoID(), stored.ID())

	cargoRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateCargoCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateCargoCommand{} // not constructed properly

	factory := new(MockCargoUoWFactory)
	handler := commands.NewCreateCargoCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateCargoCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateCargoCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCargoCommand(t)

	uow := new(MockUoW)
	factory := new(MockCargoUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreateCargoCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}

func TestCreateCargoCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCargoCommand(t)

	cargoRepo := new(MockCargoRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CargoRepository").Return(cargoRepo).Once(),
		cargoRepo.On("Add", ctx, mock.AnythingOfType("*cargo.Cargo")).
			Return(errors.New("insert error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCargoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateCargoCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "insert error")
}

func TestCreateCargoCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCargoCommand(t)

	cargoRepo := new(MockCargoRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CargoRepository").Return(cargoRepo).Once(),
		cargoRepo.On("Add", ctx, mock.AnythingOfType("*cargo.Cargo")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCargoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateCargoCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
