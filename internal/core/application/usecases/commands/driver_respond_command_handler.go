package commands

import (
	"context"
	"time"

	"cargoflow/internal/core/domain/services"
	"cargoflow/internal/core/ports"
)

// DriverRespondCommandHandler records a driver's answer to a pending
// assignment. Acceptance binds the carrier onto the cargo and advances it to
// fully assigned inside the same transaction; rejection closes the window and
// leaves the cargo untouched.
type DriverRespondCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  services.Lifecycle
	publisher  ports.EventPublisher
}

// NewDriverRespondCommandHandler creates a handler for driver responses.
func NewDriverRespondCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
) DriverRespondCommandHandler {
	return DriverRespondCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewLifecycle(),
		publisher:  publisher,
	}
}

// Handle loads the cargo and its current assignment, applies the response
// through the lifecycle engine, and persists both snapshots atomically.
func (h DriverRespondCommandHandler) Handle(
	ctx context.Context,
	command DriverRespondCommand,
) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cargos := uow.CargoRepository()
	assignments := uow.AssignmentRepository()

	loadedCargo, err := cargos.Get(ctx, command.CargoID())
	if err != nil {
		return err
	}

	current, err := currentAssignment(ctx, assignments, command.CargoID())
	if err != nil {
		return err
	}

	action := services.ActionAcceptCargo
	if command.Decision() == DecisionReject {
		action = services.ActionRejectCargo
	}

	out, err := h.lifecycle.Apply(
		command.Actor(),
		loadedCargo,
		current,
		services.Request{Action: action, Reason: command.Reason()},
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = assignments.Update(ctx, out.Assignment); err != nil {
		return err
	}

	if command.Decision() == DecisionAccept {
		if err = cargos.Update(ctx, out.Cargo); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, out.Events...)
}
