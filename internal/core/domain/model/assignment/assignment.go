package assignment

import (
	"errors"
	"fmt"
	"time"

	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/pkg/errs"
)

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment instance was
	// not created through NewAssignment or RestoreAssignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment or RestoreAssignment")
)

// Assignment is the aggregate root for one proposed (driver, vehicle) pairing
// against one cargo. It owns the accept/reject/cancel/expire negotiation
// protocol for the time-boxed window between proposal and resolution.
//
// Invariants:
//   - Binds exactly one cargo to one candidate (driver, vehicle) pair
//   - The deadline must be after the proposal time
//   - Never mutated after reaching a terminal status
//   - Expiry is derived lazily on read; stored state changes only on the
//     write path (driver response, cancellation, or the expiry sweep)
type Assignment struct {
	id        kernel.UUID
	cargoID   kernel.UUID
	driverID  kernel.UUID
	vehicleID kernel.UUID

	status Status

	assignedAt  time.Time
	expiresAt   time.Time
	respondedAt *time.Time

	// driverPhone is the proposed driver's contact, captured at proposal time
	// so acceptance can bind it onto the cargo. May be empty.
	driverPhone string

	// rejectionReason is set only for Rejected assignments.
	rejectionReason string

	// notes is free text with no semantic effect.
	notes string

	version int

	isConstructed bool
}

// NewAssignment creates a Pending assignment proposing the (driver, vehicle)
// pair for the cargo, with a negotiation window closing at expiresAt.
func NewAssignment(
	id kernel.UUID,
	cargoID kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	driverPhone string,
	assignedAt time.Time,
	expiresAt time.Time,
	notes string,
) (*Assignment, error) {
	a := &Assignment{
		status:        Pending,
		driverPhone:   driverPhone,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setCargoID(cargoID),
		a.setDriverID(driverID),
		a.setVehicleID(vehicleID),
		a.setWindow(assignedAt, expiresAt),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an Assignment from persistence, including
// terminal ones that are part of a cargo's negotiation history.
func RestoreAssignment(
	id kernel.UUID,
	cargoID kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	status Status,
	driverPhone string,
	assignedAt time.Time,
	expiresAt time.Time,
	respondedAt *time.Time,
	rejectionReason string,
	notes string,
	version int,
) (*Assignment, error) {
	a := &Assignment{
		driverPhone:     driverPhone,
		notes:           notes,
		rejectionReason: rejectionReason,
		respondedAt:     respondedAt,
		version:         version,
		isConstructed:   true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setCargoID(cargoID),
		a.setDriverID(driverID),
		a.setVehicleID(vehicleID),
		a.setStatus(status),
		a.setWindow(assignedAt, expiresAt),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Clone returns an independent copy of the assignment. The orchestrator
// mutates clones so that a failed request leaves the caller's snapshot
// untouched.
func (a *Assignment) Clone() *Assignment {
	if a == nil {
		return nil
	}

	clone := *a
	if a.respondedAt != nil {
		respondedAt := *a.respondedAt
		clone.respondedAt = &respondedAt
	}
	return &clone
}

// Validate ensures the Assignment was constructed through NewAssignment or
// RestoreAssignment.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two assignments by identifier.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// CargoID returns the identifier of the cargo under negotiation.
func (a *Assignment) CargoID() kernel.UUID {
	return a.cargoID
}

// DriverID returns the proposed driver's identifier.
func (a *Assignment) DriverID() kernel.UUID {
	return a.driverID
}

// VehicleID returns the proposed vehicle's identifier.
func (a *Assignment) VehicleID() kernel.UUID {
	return a.vehicleID
}

// StoredStatus returns the persisted negotiation status, without applying
// lazy expiry. Prefer EffectiveStatus for anything user-facing.
func (a *Assignment) StoredStatus() Status {
	return a.status
}

// AssignedAt returns the proposal timestamp.
func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// ExpiresAt returns the deadline of the negotiation window.
func (a *Assignment) ExpiresAt() time.Time {
	return a.expiresAt
}

// RespondedAt returns the driver's response timestamp, nil until a response.
func (a *Assignment) RespondedAt() *time.Time {
	return a.respondedAt
}

// DriverPhone returns the proposed driver's contact captured at proposal
// time. May be empty.
func (a *Assignment) DriverPhone() string {
	return a.driverPhone
}

// RejectionReason returns the driver's reason, empty unless Rejected.
func (a *Assignment) RejectionReason() string {
	return a.rejectionReason
}

// Notes returns the free-text notes attached at proposal time.
func (a *Assignment) Notes() string {
	return a.notes
}

// Version returns the optimistic-concurrency token.
func (a *Assignment) Version() int {
	return a.version
}

// IsExpired reports whether the assignment is past its deadline while still
// stored as Pending. A terminal assignment is never expired, no matter how
// far past its deadline the clock moves.
func (a *Assignment) IsExpired(now time.Time) bool {
	return a.status == Pending && now.After(a.expiresAt)
}

// EffectiveStatus derives the status as of now: a pending assignment past its
// deadline is presented as Expired without mutating stored state.
func (a *Assignment) EffectiveStatus(now time.Time) Status {
	if a.IsExpired(now) {
		return Expired
	}
	return a.status
}

// IsActive reports whether the assignment still occupies the cargo's single
// active-assignment slot: Pending within its window, or Accepted.
func (a *Assignment) IsActive(now time.Time) bool {
	s := a.EffectiveStatus(now)
	return s == Pending || s == Accepted
}

// Accept records the driver taking the assignment. Legal only while Pending
// and inside the negotiation window; an assignment past its deadline is
// treated as already expired.
func (a *Assignment) Accept(now time.Time) error {
	if err := a.ensureRespondable(now, Accepted); err != nil {
		return err
	}

	a.status = Accepted
	a.respondedAt = &now
	return nil
}

// Reject records the driver declining the assignment. A reason is required.
func (a *Assignment) Reject(now time.Time, reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	if err := a.ensureRespondable(now, Rejected); err != nil {
		return err
	}

	a.status = Rejected
	a.respondedAt = &now
	a.rejectionReason = reason
	return nil
}

// Cancel withdraws a pending proposal. Legal only while Pending and not yet
// expired; the cargo's own status is untouched.
func (a *Assignment) Cancel(now time.Time) error {
	if err := a.ensureRespondable(now, Cancelled); err != nil {
		return err
	}

	a.status = Cancelled
	return nil
}

// MarkExpired materializes lazy expiry on the write path. Used by the expiry
// sweep once now is past the deadline of a stored-Pending assignment.
func (a *Assignment) MarkExpired(now time.Time) error {
	if a.status != Pending {
		return errs.NewIllegalTransitionError(a.status.String(), Expired.String())
	}
	if !now.After(a.expiresAt) {
		return errs.NewInvalidStateErrorWithCause("assignment is not yet expired",
			fmt.Errorf("deadline is %s", a.expiresAt.Format(time.RFC3339)))
	}

	a.status = Expired
	return nil
}

// ensureRespondable guards every actor-invoked transition: the stored status
// must be Pending and the window must still be open.
func (a *Assignment) ensureRespondable(now time.Time, target Status) error {
	if a.IsExpired(now) {
		return errs.NewIllegalTransitionErrorWithCause(Expired.String(), target.String(),
			errors.New("negotiation window closed"))
	}
	if a.status != Pending {
		return errs.NewIllegalTransitionError(a.status.String(), target.String())
	}
	return nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setCargoID(cargoID kernel.UUID) error {
	if err := cargoID.Validate(); err != nil {
		return err
	}
	a.cargoID = cargoID
	return nil
}

func (a *Assignment) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	a.driverID = driverID
	return nil
}

func (a *Assignment) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	a.vehicleID = vehicleID
	return nil
}

func (a *Assignment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}

func (a *Assignment) setWindow(assignedAt, expiresAt time.Time) error {
	if assignedAt.IsZero() {
		return errs.NewValueIsRequiredError("assignedAt")
	}
	if !expiresAt.After(assignedAt) {
		return errs.NewValueIsInvalidErrorWithCause("expiresAt is invalid",
			fmt.Errorf("deadline %s is not after proposal time %s",
				expiresAt.Format(time.RFC3339), assignedAt.Format(time.RFC3339)))
	}

	a.assignedAt = assignedAt
	a.expiresAt = expiresAt
	return nil
}
