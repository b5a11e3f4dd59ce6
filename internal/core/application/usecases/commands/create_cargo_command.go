package commands

import (
	"errors"

	"cargoflow/internal/core/domain/model/cargo"
	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/pkg/guard"
)

var (
	ErrCreateCargoCommandIsNotConstructed = errors.New(
		"CreateCargoCommand must be created via NewCreateCargoCommand constructor",
	)
)

// CreateCargoCommand represents a client request to register a new cargo
// shipment. The cargo always starts its lifecycle in pending status.
type CreateCargoCommand struct { //nolint:recvcheck //using for validation
	cargoID     kernel.UUID
	clientID    kernel.UUID
	priority    cargo.Priority
	weightKg    float64
	distanceKm  float64
	clientPhone string

	guard guard.ConstructorGuard
}

// NewCreateCargoCommand creates a command to register a new cargo request.
// Validates identifiers, priority, positive weight and distance, and the
// client contact phone.
func NewCreateCargoCommand(
	cargoID kernel.UUID,
	clientID kernel.UUID,
	priority cargo.Priority,
	weightKg float64,
	distanceKm float64,
	clientPhone string,
) (CreateCargoCommand, error) {
	// Constructing the aggregate up front runs the full invariant set; the
	// handler rebuilds it from the validated fields.
	if _, err := cargo.NewCargo(cargoID, clientID, priority, weightKg, distanceKm, clientPhone); err != nil {
		return CreateCargoCommand{}, err
	}

	return CreateCargoCommand{
		cargoID:     cargoID,
		clientID:    clientID,
		priority:    priority,
		weightKg:    weightKg,
		distanceKm:  distanceKm,
		clientPhone: clientPhone,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCargoCommand) Validate() error {
	return c.guard.Validate(ErrCreateCargoCommandIsNotConstructed)
}

// CargoID returns the identifier for the new cargo.
func (c CreateCargoCommand) CargoID() kernel.UUID {
	return c.cargoID
}

// ClientID returns the requesting client's identifier.
func (c CreateCargoCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Priority returns the requested urgency level.
func (c CreateCargoCommand) Priority() cargo.Priority {
	return c.priority
}

// WeightKg returns the cargo weight in kilograms.
func (c CreateCargoCommand) WeightKg() float64 {
	return c.weightKg
}

// DistanceKm returns the delivery distance in kilometers.
func (c CreateCargoCommand) DistanceKm() float64 {
	return c.distanceKm
}

// ClientPhone returns the client's contact phone.
func (c CreateCargoCommand) ClientPhone() string {
	return c.clientPhone
}
