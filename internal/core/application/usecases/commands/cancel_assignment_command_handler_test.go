package commands_test

import (
	"testing"
	"time"

	"cargoflow/internal/core/application/usecases/commands"
	"cargoflow/internal/core/domain/events"
	"cargoflow/internal/core/domain/model/actor"
	"cargoflow/internal/core/domain/model/assignment"
	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelAssignmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	admin := testActor(t, actor.RoleAdmin)
	accepted := testAcceptedCargo(t)
	proposal := testPendingAssignment(t, accepted.ID(), kernel.NewUUID(), time.Now())

	cmd, err := commands.NewCancelAssignmentCommand(admin, accepted.ID())
	require.NoError(t, err)

	cargoRepo := new(MockCargoRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		uow.On("CargoRepository").Return(cargoRepo).Once(),
		cargoRepo.On("Get", ctx, accepted.ID()).Return(accepted, nil).Once(),
		assignmentRepo.On("GetCurrentForCargo", ctx, accepted.ID()).Return(proposal, nil).Once(),
		assignmentRepo.On("Update", ctx, mock.AnythingOfType("*assignment.Assignment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", ctx, mock.Anything).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelAssignmentCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	withdrawn := assignmentRepo.Calls[1].Arguments[1].(*assignment.Assignment)
	assert.Equal(t, assignment.Cancelled, withdrawn.StoredStatus())
	cargoRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)

	published := publisher.Calls[0].Arguments[1].([]events.DomainEvent)
	require.Len(t, published, 1)
	closed := published[0].(events.AssignmentClosed)
	assert.Equal(t, assignment.Cancelled, closed.Outcome)
}

func TestCancelAssignmentCommandHandler_Handle_NothingToCancel(t *testing.T) {
	ctx := t.Context()
	admin := testActor(t, actor.RoleAdmin)
	accepted := testAcceptedCargo(t)

	cmd, err := commands.NewCancelAssignmentCommand(admin, accepted.ID())
	require.NoError(t, err)

	cargoRepo := new(MockCargoRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		uow.On("CargoRepository").Return(cargoRepo).Once(),
		cargoRepo.On("Get", ctx, accepted.ID()).Return(accepted, nil).Once(),
		assignmentRepo.On("GetCurrentForCargo", ctx, accepted.ID()).
			Return(nil, errs.NewObjectNotFoundError("assignment for cargo", accepted.ID().String())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelAssignmentCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestCancelAssignmentCommandHandler_Handle_AlreadyAccepted(t *testing.T) {
	ctx := t.Context()
	admin := testActor(t, actor.RoleAdmin)
	accepted := testAcceptedCargo(t)
	now := time.Now()
	proposal := testPendingAssignment(t, accepted.ID(), kernel.NewUUID(), now)
	require.NoError(t, proposal.Accept(now))

	cmd, err := commands.NewCancelAssignmentCommand(admin, accepted.ID())
	require.NoError(t, err)

	cargoRepo := new(MockCargoRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		uow.On("CargoRepository").Return(cargoRepo).Once(),
		cargoRepo.On("Get", ctx, accepted.ID()).Return(accepted, nil).Once(),
		assignmentRepo.On("GetCurrentForCargo", ctx, accepted.ID()).Return(proposal, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelAssignmentCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrIllegalTransition)
	assignmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancelAssignmentCommandHandler_Handle_ClientForbidden(t *testing.T) {
	ctx := t.Context()
	client := testActor(t, actor.RoleClient)
	accepted := testAcceptedCargo(t)
	proposal := testPendingAssignment(t, accepted.ID(), kernel.NewUUID(), time.Now())

	cmd, err := commands.NewCancelAssignmentCommand(client, accepted.ID())
	require.NoError(t, err)

	cargoRepo := new(MockCargoRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		uow.On("CargoRepository").Return(cargoRepo).Once(),
		cargoRepo.On("Get", ctx, accepted.ID()).Return(accepted, nil).Once(),
		assignmentRepo.On("GetCurrentForCargo", ctx, accepted.ID()).Return(proposal, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelAssignmentCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrForbidden)
}
