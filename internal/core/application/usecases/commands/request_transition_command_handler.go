package commands

import (
	"context"
	"errors"
	"time"

	"cargoflow/internal/core/domain/model/assignment"
	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/core/domain/services"
	"cargoflow/internal/core/ports"
	"cargoflow/internal/pkg/errs"
)

// RequestTransitionCommandHandler drives one edge of the cargo lifecycle on
// behalf of an actor. The lifecycle engine decides legality; the handler only
// loads the snapshots, persists the outcome, and publishes events after
// commit.
type RequestTransitionCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  services.Lifecycle
	publisher  ports.EventPublisher
}

// NewRequestTransitionCommandHandler creates a handler for transition
// requests.
func NewRequestTransitionCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
) RequestTransitionCommandHandler {
	return RequestTransitionCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewLifecycle(),
		publisher:  publisher,
	}
}

// Handle loads the cargo and its current assignment, applies the transition
// through the lifecycle engine, and persists the resulting snapshot.
func (h RequestTransitionCommandHandler) Handle(
	ctx context.Context,
	command RequestTransitionCommand,
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
	loadedCargo, err := cargos.Get(ctx, command.CargoID())
	if err != nil {
		return err
	}

	current, err := currentAssignment(ctx, uow.AssignmentRepository(), command.CargoID())
	if err != nil {
		return err
	}

	out, err := h.lifecycle.RequestTransition(
		command.Actor(), loadedCargo, current, command.Target(), time.Now(),
	)
	if err != nil {
		return err
	}

	if err = cargos.Update(ctx, out.Cargo); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, out.Events...)
}

// currentAssignment loads the cargo's newest assignment, treating "none yet"
// as a nil snapshot rather than an error.
func currentAssignment(
	ctx context.Context,
	assignments ports.AssignmentRepository,
	cargoID kernel.UUID,
) (*assignment.Assignment, error) {
	current, err := assignments.GetCurrentForCargo(ctx, cargoID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return current, nil
}
