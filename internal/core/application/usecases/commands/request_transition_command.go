package commands

import (
	"errors"

	"cargoflow/internal/core/domain/model/actor"
	"cargoflow/internal/core/domain/model/cargo"
	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/pkg/guard"
)

var (
	ErrRequestTransitionCommandIsNotConstructed = errors.New(
		"RequestTransitionCommand must be created via NewRequestTransitionCommand constructor",
	)
)

// RequestTransitionCommand represents an actor's request to advance a cargo
// along one edge of its lifecycle. The target must be a valid status; whether
// the edge is legal for this actor is decided by the lifecycle engine, not
// here.
type RequestTransitionCommand struct { //nolint:recvcheck //using for validation
	actor   actor.Actor
	cargoID kernel.UUID
	target  cargo.Status

	guard guard.ConstructorGuard
}

// NewRequestTransitionCommand creates a transition request for the given
// actor, cargo, and target status.
func NewRequestTransitionCommand(
	act actor.Actor,
	cargoID kernel.UUID,
	target cargo.Status,
) (RequestTransitionCommand, error) {
	if err := errors.Join(
		act.ID.Validate(),
		cargoID.Validate(),
		target.Validate(),
	); err != nil {
		return RequestTransitionCommand{}, err
	}

	return RequestTransitionCommand{
		actor:   act,
		cargoID: cargoID,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestTransitionCommand) Validate() error {
	return c.guard.Validate(ErrRequestTransitionCommandIsNotConstructed)
}

// Actor returns the requesting actor.
func (c RequestTransitionCommand) Actor() actor.Actor {
	return c.actor
}

// CargoID returns the target cargo's identifier.
func (c RequestTransitionCommand) CargoID() kernel.UUID {
	return c.cargoID
}

// Target returns the requested lifecycle status.
func (c RequestTransitionCommand) Target() cargo.Status {
	return c.target
}
