package cargo

import (
	"errors"
	"fmt"

	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/pkg/errs"
)

var (
	// ErrCargoIsNotConstructed is returned when a Cargo instance was not created
	// through NewCargo or RestoreCargo. This ensures all cargos are validated.
	ErrCargoIsNotConstructed = errors.New("Cargo must be created via NewCargo or RestoreCargo")
)

// Cargo is the aggregate root for one shipment request. It owns the lifecycle
// status and is the only mutation path for it: every status change goes
// through TransitionTo or BindCarrier, both of which consult the declarative
// edge table in status.go.
//
// Invariants:
//   - Must have a valid unique identifier and client identifier
//   - Weight and distance must be positive
//   - Status only ever advances along edges of the lifecycle table
//   - Driver and vehicle are bound together, only via an accepted assignment
//   - Created in Pending; never deleted, only terminalized
type Cargo struct {
	id       kernel.UUID
	clientID kernel.UUID

	status   Status
	priority Priority

	weightKg   float64
	distanceKm float64

	// driverID and vehicleID are populated once an assignment is accepted.
	driverID  *kernel.UUID
	vehicleID *kernel.UUID

	clientPhone string
	driverPhone string

	// version is the optimistic-concurrency token maintained by persistence.
	version int

	isConstructed bool
}

// NewCargo creates a new Cargo in Pending status. This is the only way to
// create a cargo from a client request; all business invariants are validated
// here.
func NewCargo(
	id kernel.UUID,
	clientID kernel.UUID,
	priority Priority,
	weightKg float64,
	distanceKm float64,
	clientPhone string,
) (*Cargo, error) {
	c := &Cargo{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setClientID(clientID),
		c.setPriority(priority),
		c.setWeightKg(weightKg),
		c.setDistanceKm(distanceKm),
		c.setClientPhone(clientPhone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCargo reconstructs a Cargo from persistence. Unlike NewCargo it
// accepts any valid status, including Disputed, which has no inbound edge
// inside the engine and is only ever injected externally.
func RestoreCargo(
	id kernel.UUID,
	clientID kernel.UUID,
	status Status,
	priority Priority,
	weightKg float64,
	distanceKm float64,
	driverID *kernel.UUID,
	vehicleID *kernel.UUID,
	clientPhone string,
	driverPhone string,
	version int,
) (*Cargo, error) {
	c := &Cargo{
		isConstructed: true,
		version:       version,
		driverPhone:   driverPhone,
	}

	if err := errors.Join(
		c.setID(id),
		c.setClientID(clientID),
		c.setStatus(status),
		c.setPriority(priority),
		c.setWeightKg(weightKg),
		c.setDistanceKm(distanceKm),
		c.setClientPhone(clientPhone),
	); err != nil {
		return nil, err
	}

	if (driverID == nil) != (vehicleID == nil) {
		return nil, errs.NewValueIsInvalidError("driver and vehicle must be bound together")
	}

	if driverID != nil {
		if err := errors.Join(driverID.Validate(), vehicleID.Validate()); err != nil {
			return nil, err
		}
		c.driverID = driverID
		c.vehicleID = vehicleID
	}

	return c, nil
}

// Clone returns an independent copy of the cargo. The orchestrator mutates
// clones so that a failed request leaves the caller's snapshot untouched.
func (c *Cargo) Clone() *Cargo {
	if c == nil {
		return nil
	}

	clone := *c
	if c.driverID != nil {
		driverID := *c.driverID
		clone.driverID = &driverID
	}
	if c.vehicleID != nil {
		vehicleID := *c.vehicleID
		clone.vehicleID = &vehicleID
	}
	return &clone
}

// Validate ensures the Cargo was constructed through NewCargo or RestoreCargo.
func (c *Cargo) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCargoIsNotConstructed
	}
	return nil
}

// IsEqual compares two cargos by identifier.
func (c *Cargo) IsEqual(other *Cargo) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the cargo's unique identifier.
func (c *Cargo) ID() kernel.UUID {
	return c.id
}

// ClientID returns the identifier of the client who requested the cargo.
func (c *Cargo) ClientID() kernel.UUID {
	return c.clientID
}

// Status returns the current lifecycle status.
func (c *Cargo) Status() Status {
	return c.status
}

// Priority returns the informational urgency level.
func (c *Cargo) Priority() Priority {
	return c.priority
}

// WeightKg returns the cargo weight in kilograms.
func (c *Cargo) WeightKg() float64 {
	return c.weightKg
}

// DistanceKm returns the delivery distance in kilometers.
func (c *Cargo) DistanceKm() float64 {
	return c.distanceKm
}

// DriverID returns the bound driver's ID, or nil before an assignment is
// accepted.
func (c *Cargo) DriverID() *kernel.UUID {
	return c.driverID
}

// VehicleID returns the bound vehicle's ID, or nil before an assignment is
// accepted.
func (c *Cargo) VehicleID() *kernel.UUID {
	return c.vehicleID
}

// ClientPhone returns the client's contact phone.
func (c *Cargo) ClientPhone() string {
	return c.clientPhone
}

// DriverPhone returns the bound driver's contact phone, empty before binding.
func (c *Cargo) DriverPhone() string {
	return c.driverPhone
}

// Version returns the optimistic-concurrency token.
func (c *Cargo) Version() int {
	return c.version
}

// HasCarrier reports whether a driver and vehicle are bound to the cargo.
func (c *Cargo) HasCarrier() bool {
	return c.driverID != nil && c.vehicleID != nil
}

// IsCarriedBy reports whether the given driver is the bound carrier.
func (c *Cargo) IsCarriedBy(driverID kernel.UUID) bool {
	return c.driverID != nil && c.driverID.IsEqual(driverID)
}

// TransitionTo advances the cargo along one edge of the lifecycle table.
// Returns an IllegalTransitionError when the edge does not exist. Terminal
// statuses never succeed here because they have no outbound edges.
func (c *Cargo) TransitionTo(target Status) error {
	newStatus, err := c.status.TransitionTo(target)
	if err != nil {
		return err
	}

	c.status = newStatus
	return nil
}

// BindCarrier binds the driver and vehicle of an accepted assignment onto the
// cargo and advances it to FullyAssigned. Rebinding while already
// FullyAssigned is allowed, mirroring a fresh assignment accepted after the
// previous one closed.
func (c *Cargo) BindCarrier(driverID, vehicleID kernel.UUID, driverPhone string) error {
	if err := errors.Join(driverID.Validate(), vehicleID.Validate()); err != nil {
		return err
	}

	if c.status != FullyAssigned {
		newStatus, err := c.status.TransitionTo(FullyAssigned)
		if err != nil {
			return err
		}
		c.status = newStatus
	}

	c.driverID = &driverID
	c.vehicleID = &vehicleID
	c.driverPhone = driverPhone
	return nil
}

func (c *Cargo) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cargo) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	c.clientID = clientID
	return nil
}

func (c *Cargo) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *Cargo) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}

func (c *Cargo) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg is invalid",
			fmt.Errorf("%g is not greater than 0", weightKg))
	}
	c.weightKg = weightKg
	return nil
}

func (c *Cargo) setDistanceKm(distanceKm float64) error {
	if distanceKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm is invalid",
			fmt.Errorf("%g is not greater than 0", distanceKm))
	}
	c.distanceKm = distanceKm
	return nil
}

func (c *Cargo) setClientPhone(clientPhone string) error {
	if clientPhone == "" {
		return errs.NewValueIsRequiredError("clientPhone")
	}
	c.clientPhone = clientPhone
	return nil
}
