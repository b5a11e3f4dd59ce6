package commands_test

import (
	"context"
	"testing"
	"time"

	"cargoflow/internal/core/application/usecases/commands"
	"cargoflow/internal/core/domain/events"
	"cargoflow/internal/core/domain/model/actor"
	"cargoflow/internal/core/domain/model/assignment"
	"cargoflow/internal/core/domain/model/cargo"
	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
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

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CargoRepository() ports.CargoRepository {
	args := m.Called()
	return args.Get(0).(ports.CargoRepository)
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockCargoUoWFactory struct{ mock.Mock }

func (m *MockCargoUoWFactory) Create() commands.CargoUoW {
	args := m.Called()
	return args.Get(0).(commands.CargoUoW)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	args := m.Called(ctx, evts)
	return args.Error(0)
}

func testActor(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()
	act, err := actor.NewActor(kernel.NewUUID(), role)
	if err != nil {
		t.Fatalf("creating test actor: %v", err)
	}
	return act
}

func testPendingCargo(t *testing.T) *cargo.Cargo {
	t.Helper()
	c, err := cargo.NewCargo(
		kernel.NewUUID(), kernel.NewUUID(), cargo.PriorityNormal, 100, 25, "+15550001111",
	)
	if err != nil {
		t.Fatalf("creating test cargo: %v", err)
	}
	return c
}

func testAcceptedCargo(t *testing.T) *cargo.Cargo {
	t.Helper()
	c := testPendingCargo(t)
	for _, target := range []cargo.Status{cargo.Quoted, cargo.Accepted} {
		if err := c.TransitionTo(target); err != nil {
			t.Fatalf("advancing test cargo to %s: %v", target, err)
		}
	}
	return c
}

func testPendingAssignment(
	t *testing.T,
	cargoID kernel.UUID,
	driverID kernel.UUID,
	now time.Time,
) *assignment.Assignment {
	t.Helper()
	a, err := assignment.NewAssignment(
		kernel.NewUUID(), cargoID, driverID, kernel.NewUUID(),
		"+15550002222", now, now.Add(time.Hour), "",
	)
	if err != nil {
		t.Fatalf("creating test assignment: %v", err)
	}
	return a
}
