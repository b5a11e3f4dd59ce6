package ports

import (
	"context"

	"cargoflow/internal/core/domain/model/cargo"
	"cargoflow/internal/core/domain/model/kernel"
)

// CargoRepository defines the persistence contract for cargo aggregates.
type CargoRepository interface {
	// Add persists a new cargo aggregate.
	Add(ctx context.Context, aggregate *cargo.Cargo) error

	// Update persists changes to an existing cargo aggregate using its
	// optimistic version token. Returns a Conflict error when the stored
	// version moved past the aggregate's snapshot.
	Update(ctx context.Context, aggregate *cargo.Cargo) error

	// Get retrieves a cargo aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*cargo.Cargo, error)

	// GetAllActive retrieves all cargos that have not reached a terminal
	// status, for dispatcher work queues.
	GetAllActive(ctx context.Context) ([]*cargo.Cargo, error)
}
