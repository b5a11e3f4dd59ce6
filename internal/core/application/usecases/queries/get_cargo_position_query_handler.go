package queries

import (
	"context"
	"database/sql"
	"errors"

	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/core/ports"
	"cargoflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCargoPositionQueryHandler resolves the cargo's bound driver and reads
// that driver's position from the live feed. The engine never stores
// positions; the feed is the source of truth.
type GetCargoPositionQueryHandler struct {
	db   *gorm.DB
	feed ports.PositionFeed
}

// NewGetCargoPositionQueryHandler creates a handler for carrier position
// queries.
func NewGetCargoPositionQueryHandler(
	db *gorm.DB,
	feed ports.PositionFeed,
) GetCargoPositionQueryHandler {
	return GetCargoPositionQueryHandler{db: db, feed: feed}
}

// Handle looks up the carrier bound to the cargo and returns its current
// position. A cargo without a carrier has no position to report.
func (h GetCargoPositionQueryHandler) Handle(
	ctx context.Context,
	query GetCargoPositionQuery,
) (GetCargoPositionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCargoPositionQueryResponse{}, err
	}

	var driverID uuid.NullUUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT driver_id
		FROM cargos
		WHERE id = ?
	`, query.CargoID().Bytes()).Row()

	err := row.Scan(&driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCargoPositionQueryResponse{},
				errs.NewObjectNotFoundError("cargo", query.CargoID().String())
		}
		return GetCargoPositionQueryResponse{}, err
	}

	if !driverID.Valid {
		return GetCargoPositionQueryResponse{},
			errs.NewInvalidStateError("no carrier is bound to the cargo")
	}

	carrierID, err := kernel.UUIDFromBytes(driverID.UUID[:])
	if err != nil {
		return GetCargoPositionQueryResponse{}, err
	}

	position, err := h.feed.CurrentPosition(ctx, carrierID)
	if err != nil {
		return GetCargoPositionQueryResponse{}, err
	}

	return GetCargoPositionQueryResponse{
		DriverID:  carrierID,
		Latitude:  position.Latitude,
		Longitude: position.Longitude,
	}, nil
}
