// Package tracking provides an in-memory implementation of the position
// feed. Driver devices report through the HTTP adapter; reads serve the
// cargo tracking endpoint.
package tracking

import (
	"context"
	"sync"

	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/core/ports"
	"cargoflow/internal/pkg/errs"
)

// InMemoryPositionFeed keeps the last reported position per driver. Positions
// are not persisted; a restart starts the feed empty.
type InMemoryPositionFeed struct {
	mu        sync.RWMutex
	positions map[kernel.UUID]ports.Position
}

// NewInMemoryPositionFeed creates an empty position feed.
func NewInMemoryPositionFeed() *InMemoryPositionFeed {
	return &InMemoryPositionFeed{
		positions: make(map[kernel.UUID]ports.Position),
	}
}

// Report stores the driver's latest position, replacing any earlier one.
func (f *InMemoryPositionFeed) Report(_ context.Context, driverID kernel.UUID, position ports.Position) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.positions[driverID] = position

	return nil
}

// CurrentPosition returns the driver's last reported position.
func (f *InMemoryPositionFeed) CurrentPosition(_ context.Context, driverID kernel.UUID) (ports.Position, error) {
	if err := driverID.Validate(); err != nil {
		return ports.Position{}, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	position, ok := f.positions[driverID]
	if !ok {
		return ports.Position{}, errs.NewObjectNotFoundError("driver position", driverID.String())
	}

	return position, nil
}
