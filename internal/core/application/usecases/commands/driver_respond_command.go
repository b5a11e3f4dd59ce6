package commands

import (
	"errors"

	"cargoflow/internal/core/domain/model/actor"
	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/pkg/errs"
	"cargoflow/internal/pkg/guard"
)

var (
	ErrDriverRespondCommandIsNotConstructed = errors.New(
		"DriverRespondCommand must be created via NewDriverRespondCommand constructor",
	)
)

// Decision is a driver's answer to a pending assignment.
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

// Validate checks the decision is one of the known values.
func (d Decision) Validate() error {
	switch d {
	case DecisionAccept, DecisionReject:
		return nil
	default:
		return errs.NewValueIsInvalidError("decision")
	}
}

// DriverRespondCommand carries a driver's response to the pending assignment
// on a cargo. Reason is required for rejections and ignored for acceptances.
type DriverRespondCommand struct { //nolint:recvcheck //using for validation
	actor    actor.Actor
	cargoID  kernel.UUID
	decision Decision
	reason   string

	guard guard.ConstructorGuard
}

// NewDriverRespondCommand creates a command recording a driver's accept or
// reject decision.
func NewDriverRespondCommand(
	act actor.Actor,
	cargoID kernel.UUID,
	decision Decision,
	reason string,
) (DriverRespondCommand, error) {
	if err := errors.Join(
		act.ID.Validate(),
		cargoID.Validate(),
		decision.Validate(),
	); err != nil {
		return DriverRespondCommand{}, err
	}

	if decision == DecisionReject && reason == "" {
		return DriverRespondCommand{}, errs.NewValueIsRequiredError("reason")
	}

	return DriverRespondCommand{
		actor:    act,
		cargoID:  cargoID,
		decision: decision,
		reason:   reason,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DriverRespondCommand) Validate() error {
	return c.guard.Validate(ErrDriverRespondCommandIsNotConstructed)
}

// Actor returns the responding driver.
func (c DriverRespondCommand) Actor() actor.Actor {
	return c.actor
}

// CargoID returns the cargo whose assignment is answered.
func (c DriverRespondCommand) CargoID() kernel.UUID {
	return c.cargoID
}

// Decision returns accept or reject.
func (c DriverRespondCommand) Decision() Decision {
	return c.decision
}

// Reason returns the rejection reason, empty for acceptances.
func (c DriverRespondCommand) Reason() string {
	return c.reason
}
