package commands

import (
	"errors"
	"time"

	"cargoflow/internal/core/domain/model/actor"
	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/pkg/errs"
	"cargoflow/internal/pkg/guard"
)

var (
	ErrProposeAssignmentCommandIsNotConstructed = errors.New(
		"ProposeAssignmentCommand must be created via NewProposeAssignmentCommand constructor",
	)
)

// ProposeAssignmentCommand opens a negotiation window: a dispatcher offers a
// driver and vehicle pair to a cargo, valid until expiresAt.
type ProposeAssignmentCommand struct { //nolint:recvcheck //using for validation
	actor        actor.Actor
	assignmentID kernel.UUID
	cargoID      kernel.UUID
	driverID     kernel.UUID
	vehicleID    kernel.UUID
	driverPhone  string
	expiresAt    time.Time
	notes        string

	guard guard.ConstructorGuard
}

// NewProposeAssignmentCommand creates a command to propose a delivery
// assignment for a cargo.
func NewProposeAssignmentCommand(
	act actor.Actor,
	assignmentID kernel.UUID,
	cargoID kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	driverPhone string,
	expiresAt time.Time,
	notes string,
) (ProposeAssignmentCommand, error) {
	if err := errors.Join(
		act.ID.Validate(),
		assignmentID.Validate(),
		cargoID.Validate(),
		driverID.Validate(),
		vehicleID.Validate(),
	); err != nil {
		return ProposeAssignmentCommand{}, err
	}

	if expiresAt.IsZero() {
		return ProposeAssignmentCommand{}, errs.NewValueIsRequiredError("expiresAt")
	}

	return ProposeAssignmentCommand{
		actor:        act,
		assignmentID: assignmentID,
		cargoID:      cargoID,
		driverID:     driverID,
		vehicleID:    vehicleID,
		driverPhone:  driverPhone,
		expiresAt:    expiresAt,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProposeAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrProposeAssignmentCommandIsNotConstructed)
}

// Actor returns the proposing actor.
func (c ProposeAssignmentCommand) Actor() actor.Actor {
	return c.actor
}

// AssignmentID returns the identifier for the new assignment.
func (c ProposeAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// CargoID returns the cargo to assign.
func (c ProposeAssignmentCommand) CargoID() kernel.UUID {
	return c.cargoID
}

// DriverID returns the offered driver.
func (c ProposeAssignmentCommand) DriverID() kernel.UUID {
	return c.driverID
}

// VehicleID returns the offered vehicle.
func (c ProposeAssignmentCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// DriverPhone returns the offered driver's contact phone.
func (c ProposeAssignmentCommand) DriverPhone() string {
	return c.driverPhone
}

// ExpiresAt returns the negotiation window deadline.
func (c ProposeAssignmentCommand) ExpiresAt() time.Time {
	return c.expiresAt
}

// Notes returns the free-form dispatcher notes.
func (c ProposeAssignmentCommand) Notes() string {
	return c.notes
}
