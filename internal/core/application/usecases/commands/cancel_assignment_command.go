package commands

import (
	"errors"

	"cargoflow/internal/core/domain/model/actor"
	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/pkg/guard"
)

var (
	ErrCancelAssignmentCommandIsNotConstructed = errors.New(
		"CancelAssignmentCommand must be created via NewCancelAssignmentCommand constructor",
	)
)

// CancelAssignmentCommand withdraws the pending assignment on a cargo before
// the driver has responded.
type CancelAssignmentCommand struct { //nolint:recvcheck //using for validation
	actor   actor.Actor
	cargoID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelAssignmentCommand creates a command to withdraw a pending
// assignment.
func NewCancelAssignmentCommand(
	act actor.Actor,
	cargoID kernel.UUID,
) (CancelAssignmentCommand, error) {
	if err := errors.Join(
		act.ID.Validate(),
		cargoID.Validate(),
	); err != nil {
		return CancelAssignmentCommand{}, err
	}

	return CancelAssignmentCommand{
		actor:   act,
		cargoID: cargoID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelAssignmentCommandIsNotConstructed)
}

// Actor returns the withdrawing actor.
func (c CancelAssignmentCommand) Actor() actor.Actor {
	return c.actor
}

// CargoID returns the cargo whose assignment is withdrawn.
func (c CancelAssignmentCommand) CargoID() kernel.UUID {
	return c.cargoID
}
