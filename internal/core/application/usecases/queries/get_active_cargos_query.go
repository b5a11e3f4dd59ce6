// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read the database directly through GORM, bypassing the
// aggregate repositories: they never mutate state and shape results for
// display rather than for domain logic.
package queries

import (
	"errors"

	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/pkg/guard"
)

var (
	ErrGetActiveCargosQueryIsNotConstructed = errors.New(
		"GetActiveCargosQuery must be created via NewGetActiveCargosQuery constructor",
	)
)

// GetActiveCargosQuery retrieves every cargo whose lifecycle has not reached
// a terminal status, for dispatch board visibility.
type GetActiveCargosQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveCargosQuery creates a query to retrieve active cargos.
// This is a parameterless query that fetches all non-terminal cargos.
func NewGetActiveCargosQuery() GetActiveCargosQuery {
	return GetActiveCargosQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveCargosQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveCargosQueryIsNotConstructed)
}

// GetActiveCargosQueryResponse represents one active cargo on the dispatch
// board. Status and priority carry their wire names.
type GetActiveCargosQueryResponse struct {
	ID         kernel.UUID
	ClientID   kernel.UUID
	Status     string
	Priority   string
	WeightKg   float64
	DistanceKm float64
	HasCarrier bool
}
