package commands

import (
	"context"
	"time"

	"cargoflow/internal/core/domain/services"
	"cargoflow/internal/core/ports"
)

// CancelAssignmentCommandHandler withdraws a pending assignment. The cargo
// itself is not touched; only the negotiation window closes.
type CancelAssignmentCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  services.Lifecycle
	publisher  ports.EventPublisher
}

// NewCancelAssignmentCommandHandler creates a handler for assignment
// withdrawal.
func NewCancelAssignmentCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
) CancelAssignmentCommandHandler {
	return CancelAssignmentCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewLifecycle(),
		publisher:  publisher,
	}
}

// Handle loads the snapshots, cancels the pending assignment through the
// lifecycle engine, and persists the closed window.
func (h CancelAssignmentCommandHandler) Handle(
	ctx context.Context,
	command CancelAssignmentCommand,
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

	out, err := h.lifecycle.Apply(
		command.Actor(),
		loadedCargo,
		current,
		services.Request{Action: services.ActionCancelAssignment},
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = assignments.Update(ctx, out.Assignment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, out.Events...)
}
