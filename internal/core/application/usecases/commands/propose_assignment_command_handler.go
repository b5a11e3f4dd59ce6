package commands

import (
	"context"
	"time"

	"cargoflow/internal/core/domain/services"
	"cargoflow/internal/core/ports"
)

// ProposeAssignmentCommandHandler opens a negotiation window for a cargo.
// Enforces the single-active-assignment invariant through the lifecycle
// engine before persisting the pending assignment.
type ProposeAssignmentCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  services.Lifecycle
	publisher  ports.EventPublisher
}

// NewProposeAssignmentCommandHandler creates a handler for assignment
// proposals.
func NewProposeAssignmentCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
) ProposeAssignmentCommandHandler {
	return ProposeAssignmentCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewLifecycle(),
		publisher:  publisher,
	}
}

// Handle loads the cargo and its current assignment, opens the negotiation
// through the lifecycle engine, and stores the new pending assignment.
func (h ProposeAssignmentCommandHandler) Handle(
	ctx context.Context,
	command ProposeAssignmentCommand,
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

	assignments := uow.AssignmentRepository()
	loadedCargo, err := uow.CargoRepository().Get(ctx, command.CargoID())
	if err != nil {
		return err
	}

	current, err := currentAssignment(ctx, assignments, command.CargoID())
	if err != nil {
		return err
	}

	out, err := h.lifecycle.Propose(
		command.Actor(),
		loadedCargo,
		current,
		services.Proposal{
			AssignmentID: command.AssignmentID(),
			DriverID:     command.DriverID(),
			VehicleID:    command.VehicleID(),
			DriverPhone:  command.DriverPhone(),
			ExpiresAt:    command.ExpiresAt(),
			Notes:        command.Notes(),
		},
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = assignments.Add(ctx, out.Assignment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, out.Events...)
}
