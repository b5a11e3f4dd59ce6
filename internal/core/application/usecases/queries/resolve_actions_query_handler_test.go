package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cargoflow/internal/core/application/usecases/queries"
	"cargoflow/internal/core/domain/model/actor"
	"cargoflow/internal/core/domain/model/assignment"
	"cargoflow/internal/core/domain/model/cargo"
	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCargoRepository struct{ mock.Mock }

func (m *MockCargoRepository) Add(ctx context.Context, c *cargo.Cargo) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCargoRepository) Update(ctx context.Context, c *cargo.Cargo) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCargoRepository) Get(ctx context.Context, id kernel.UUID) (*cargo.Cargo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cargo.Cargo), args.Error(1)
}

func (m *MockCargoRepository) GetAllActive(ctx context.Context) ([]*cargo.Cargo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cargo.Cargo), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetCurrentForCargo(
	ctx context.Context,
	cargoID kernel.UUID,
) (*assignment.Assignment, error) {
	args := m.Called(ctx, cargoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetHistoryForCargo(
	ctx context.Context,
	cargoID kernel.UUID,
) ([]*assignment.Assignment, error) {
	args := m.Called(ctx, cargoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetAllOverduePending(
	ctx context.Context,
	now time.Time,
) ([]*assignment.Assignment, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

func testActor(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()
	act, err := actor.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return act
}

func testPendingCargo(t *testing.T) *cargo.Cargo {
	t.Helper()
	c, err := cargo.NewCargo(
		kernel.NewUUID(), kernel.NewUUID(), cargo.PriorityNormal, 100, 25, "+15550001111",
	)
	require.NoError(t, err)
	return c
}

func responseIDs(responses []queries.ResolveActionsQueryResponse) []string {
	ids := make([]string, len(responses))
	for i, r := range responses {
		ids[i] = r.ID
	}
	return ids
}

func TestResolveActionsQueryHandler_Handle_AdminOnPendingCargo(t *testing.T) {
	ctx := context.Background()
	cargoRepo := &MockCargoRepository{}
	assignmentRepo := &MockAssignmentRepository{}
	handler := queries.NewResolveActionsQueryHandler(cargoRepo, assignmentRepo)

	c := testPendingCargo(t)
	cargoRepo.On("Get", ctx, c.ID()).Return(c, nil).Once()
	assignmentRepo.On("GetCurrentForCargo", ctx, c.ID()).
		Return(nil, errs.NewObjectNotFoundError("assignment", c.ID())).Once()

	admin := testActor(t, actor.RoleAdmin)
	query, err := queries.NewResolveActionsQuery(admin, c.ID())
	require.NoError(t, err)

	responses, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"transition_to_quoted",
		"call_client",
		"report_issue",
		"transition_to_cancelled",
	}, responseIDs(responses))

	for _, r := range responses {
		assert.NotEmpty(t, r.Label)
		assert.True(t, r.Enabled)
	}

	cargoRepo.AssertExpectations(t)
	assignmentRepo.AssertExpectations(t)
}

func TestResolveActionsQueryHandler_Handle_DriverSeesPendingProposal(t *testing.T) {
	ctx := context.Background()
	cargoRepo := &MockCargoRepository{}
	assignmentRepo := &MockAssignmentRepository{}
	handler := queries.NewResolveActionsQueryHandler(cargoRepo, assignmentRepo)

	driver := testActor(t, actor.RoleDriver)
	c := testPendingCargo(t)
	require.NoError(t, c.TransitionTo(cargo.Quoted))
	require.NoError(t, c.TransitionTo(cargo.Accepted))

	now := time.Now()
	a, err := assignment.NewAssignment(
		kernel.NewUUID(), c.ID(), driver.ID, kernel.NewUUID(),
		"+15550002222", now, now.Add(time.Hour), "",
	)
	require.NoError(t, err)

	cargoRepo.On("Get", ctx, c.ID()).Return(c, nil).Once()
	assignmentRepo.On("GetCurrentForCargo", ctx, c.ID()).Return(a, nil).Once()

	query, err := queries.NewResolveActionsQuery(driver, c.ID())
	require.NoError(t, err)

	responses, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, []string{"accept_cargo", "reject_cargo"}, responseIDs(responses))
}

func TestResolveActionsQueryHandler_Handle_EmptyListIsNotAnError(t *testing.T) {
	ctx := context.Background()
	cargoRepo := &MockCargoRepository{}
	assignmentRepo := &MockAssignmentRepository{}
	handler := queries.NewResolveActionsQueryHandler(cargoRepo, assignmentRepo)

	// A driver with no assignment and no custody has nothing to do here
	c := testPendingCargo(t)
	cargoRepo.On("Get", ctx, c.ID()).Return(c, nil).Once()
	assignmentRepo.On("GetCurrentForCargo", ctx, c.ID()).
		Return(nil, errs.NewObjectNotFoundError("assignment", c.ID())).Once()

	query, err := queries.NewResolveActionsQuery(testActor(t, actor.RoleDriver), c.ID())
	require.NoError(t, err)

	responses, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Empty(t, responses)
}

func TestResolveActionsQueryHandler_Handle_CargoNotFound(t *testing.T) {
	ctx := context.Background()
	cargoRepo := &MockCargoRepository{}
	assignmentRepo := &MockAssignmentRepository{}
	handler := queries.NewResolveActionsQueryHandler(cargoRepo, assignmentRepo)

	cargoID := kernel.NewUUID()
	cargoRepo.On("Get", ctx, cargoID).
		Return(nil, errs.NewObjectNotFoundError("cargo", cargoID)).Once()

	query, err := queries.NewResolveActionsQuery(testActor(t, actor.RoleAdmin), cargoID)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, query)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assignmentRepo.AssertNotCalled(t, "GetCurrentForCargo", mock.Anything, mock.Anything)
}

func TestResolveActionsQueryHandler_Handle_AssignmentLookupFailure(t *testing.T) {
	ctx := context.Background()
	cargoRepo := &MockCargoRepository{}
	assignmentRepo := &MockAssignmentRepository{}
	handler := queries.NewResolveActionsQueryHandler(cargoRepo, assignmentRepo)

	c := testPendingCargo(t)
	dbErr := errors.New("database error")
	cargoRepo.On("Get", ctx, c.ID()).Return(c, nil).Once()
	assignmentRepo.On("GetCurrentForCargo", ctx, c.ID()).Return(nil, dbErr).Once()

	query, err := queries.NewResolveActionsQuery(testActor(t, actor.RoleAdmin), c.ID())
	require.NoError(t, err)

	_, err = handler.Handle(ctx, query)

	require.Error(t, err)
	require.ErrorIs(t, err, dbErr)
}

func TestResolveActionsQueryHandler_Handle_UnconstructedQuery(t *testing.T) {
	handler := queries.NewResolveActionsQueryHandler(&MockCargoRepository{}, &MockAssignmentRepository{})

	_, err := handler.Handle(context.Background(), queries.ResolveActionsQuery{})

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrResolveActionsQueryIsNotConstructed)
}
