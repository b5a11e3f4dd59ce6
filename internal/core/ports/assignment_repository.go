package ports

import (
	"context"
	"time"

	"cargoflow/internal/core/domain/model/assignment"
	"cargoflow/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for delivery
// assignment aggregates, including the negotiation history of a cargo.
type AssignmentRepository interface {
	// Add persists a new assignment aggregate.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists changes to an existing assignment aggregate using its
	// optimistic version token. Returns a Conflict error when the stored
	// version moved past the aggregate's snapshot.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// Get retrieves an assignment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// GetCurrentForCargo retrieves the cargo's most recent assignment by
	// proposal time. Returns an ObjectNotFound error when the cargo has
	// never been proposed to anyone.
	GetCurrentForCargo(ctx context.Context, cargoID kernel.UUID) (*assignment.Assignment, error)

	// GetHistoryForCargo retrieves every assignment ever proposed for a
	// cargo, newest first.
	GetHistoryForCargo(ctx context.Context, cargoID kernel.UUID) ([]*assignment.Assignment, error)

	// GetAllOverduePending retrieves assignments still stored as pending
	// whose deadline is before now. Used by the expiry sweep.
	GetAllOverduePending(ctx context.Context, now time.Time) ([]*assignment.Assignment, error)
}
