package ports

import (
	"context"

	"cargoflow/internal/core/domain/events"
	"cargoflow/internal/core/domain/model/kernel"
)

// EventPublisher hands committed domain events to external collaborators
// (notification dispatch, invoicing eligibility). Delivery and retry
// semantics belong to the consumer, not the engine.
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}

// PricingEstimator is the external pricing function. The engine never calls
// it on its own; the HTTP adapter consults it once a cargo is delivered.
type PricingEstimator interface {
	Estimate(weightKg, distanceKm float64, priority string) (float64, error)
}

// Position is one point of the live-position feed.
type Position struct {
	Latitude  float64
	Longitude float64
}

// PositionFeed supplies the bound driver's current position for display.
// The engine never reads or writes positions itself.
type PositionFeed interface {
	CurrentPosition(ctx context.Context, driverID kernel.UUID) (Position, error)
}

// PositionReporter ingests position reports from driver devices. Feeds that
// mirror an external tracker may not implement it.
type PositionReporter interface {
	Report(ctx context.Context, driverID kernel.UUID, position Position) error
}
