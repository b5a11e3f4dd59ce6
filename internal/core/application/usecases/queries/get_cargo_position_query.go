package queries

import (
	"errors"

	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/pkg/guard"
)

var (
	ErrGetCargoPositionQueryIsNotConstructed = errors.New(
		"GetCargoPositionQuery must be created via NewGetCargoPositionQuery constructor",
	)
)

// GetCargoPositionQuery retrieves the bound carrier's last reported position
// for a cargo in flight.
type GetCargoPositionQuery struct { //nolint:recvcheck //using for validation
	cargoID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCargoPositionQuery creates a query for the carrier position of a
// cargo.
func NewGetCargoPositionQuery(cargoID kernel.UUID) (GetCargoPositionQuery, error) {
	if err := cargoID.Validate(); err != nil {
		return GetCargoPositionQuery{}, err
	}

	return GetCargoPositionQuery{
		cargoID: cargoID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCargoPositionQuery) Validate() error {
	return q.guard.Validate(ErrGetCargoPositionQueryIsNotConstructed)
}

// CargoID returns the cargo being tracked.
func (q GetCargoPositionQuery) CargoID() kernel.UUID {
	return q.cargoID
}

// GetCargoPositionQueryResponse is the carrier's last known position.
type GetCargoPositionQueryResponse struct {
	DriverID  kernel.UUID
	Latitude  float64
	Longitude float64
}
