package queries

import (
	"errors"
	"time"

	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/pkg/guard"
)

var (
	ErrGetAssignmentHistoryQueryIsNotConstructed = errors.New(
		"GetAssignmentHistoryQuery must be created via NewGetAssignmentHistoryQuery constructor",
	)
)

// GetAssignmentHistoryQuery retrieves the full negotiation history of one
// cargo, newest proposal first. Pending rows past their deadline are
// presented as expired even before the sweep materializes them.
type GetAssignmentHistoryQuery struct { //nolint:recvcheck //using for validation
	cargoID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignmentHistoryQuery creates a query for a cargo's assignment
// history.
func NewGetAssignmentHistoryQuery(cargoID kernel.UUID) (GetAssignmentHistoryQuery, error) {
	if err := cargoID.Validate(); err != nil {
		return GetAssignmentHistoryQuery{}, err
	}

	return GetAssignmentHistoryQuery{
		cargoID: cargoID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignmentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentHistoryQueryIsNotConstructed)
}

// CargoID returns the cargo whose history is requested.
func (q GetAssignmentHistoryQuery) CargoID() kernel.UUID {
	return q.cargoID
}

// GetAssignmentHistoryQueryResponse represents one negotiation window in a
// cargo's history. Status is the effective status as of query time.
type GetAssignmentHistoryQueryResponse struct {
	ID              kernel.UUID
	DriverID        kernel.UUID
	VehicleID       kernel.UUID
	Status          string
	AssignedAt      time.Time
	ExpiresAt       time.Time
	RespondedAt     *time.Time
	RejectionReason string
	Notes           string
}
