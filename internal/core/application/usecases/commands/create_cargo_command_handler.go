package commands

import (
	"context"

	"cargoflow/internal/core/domain/model/cargo"
)

// CreateCargoCommandHandler persists new cargo requests. Creation does not go
// through the lifecycle orchestrator: pending is the fixed entry point of the
// state machine, not a transition.
type CreateCargoCommandHandler struct {
	uowFactory CargoUoWFactory
}

// NewCreateCargoCommandHandler creates a handler for cargo registration.
func NewCreateCargoCommandHandler(uowFactory CargoUoWFactory) CreateCargoCommandHandler {
	return CreateCargoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the command and stores the new cargo in pending status.
func (h CreateCargoCommandHandler) Handle(ctx context.Context, command CreateCargoCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	newCargo, err := cargo.NewCargo(
		command.CargoID(),
		command.ClientID(),
		command.Priority(),
		command.WeightKg(),
		command.DistanceKm(),
		command.ClientPhone(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CargoRepository().Add(ctx, newCargo); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
