// Package events defines the domain events the lifecycle orchestrator emits
// for external collaborators (notification dispatch, invoicing eligibility).
// Events are returned to the caller alongside the new state and published
// only after the surrounding transaction commits.
package events

import (
	"time"

	"cargoflow/internal/core/domain/model/assignment"
	"cargoflow/internal/core/domain/model/cargo"
	"cargoflow/internal/core/domain/model/kernel"
)

// DomainEvent is implemented by every event the engine emits.
type DomainEvent interface {
	// EventName is the stable wire name consumers subscribe to.
	EventName() string

	// OccurredAt is when the state change was applied.
	OccurredAt() time.Time
}

// CargoStatusChanged records one traversed edge of the cargo lifecycle.
type CargoStatusChanged struct {
	CargoID kernel.UUID
	From    cargo.Status
	To      cargo.Status
	At      time.Time
}

func (e CargoStatusChanged) EventName() string     { return "cargo.status_changed" }
func (e CargoStatusChanged) OccurredAt() time.Time { return e.At }

// AssignmentProposed records the opening of a negotiation window.
type AssignmentProposed struct {
	AssignmentID kernel.UUID
	CargoID      kernel.UUID
	DriverID     kernel.UUID
	VehicleID    kernel.UUID
	ExpiresAt    time.Time
	At           time.Time
}

func (e AssignmentProposed) EventName() string     { return "assignment.proposed" }
func (e AssignmentProposed) OccurredAt() time.Time { return e.At }

// AssignmentAccepted records a driver taking an assignment. The orchestrator
// uses it to permit the cargo's subsequent pickup transition.
type AssignmentAccepted struct {
	AssignmentID kernel.UUID
	CargoID      kernel.UUID
	DriverID     kernel.UUID
	VehicleID    kernel.UUID
	At           time.Time
}

func (e AssignmentAccepted) EventName() string     { return "assignment.accepted" }
func (e AssignmentAccepted) OccurredAt() time.Time { return e.At }

// AssignmentClosed records a negotiation resolving without acceptance
// (rejected, cancelled, or expired), leaving the cargo eligible for a fresh
// proposal.
type AssignmentClosed struct {
	AssignmentID kernel.UUID
	CargoID      kernel.UUID
	Outcome      assignment.Status
	Reason       string
	At           time.Time
}

func (e AssignmentClosed) EventName() string     { return "assignment.closed" }
func (e AssignmentClosed) OccurredAt() time.Time { return e.At }
