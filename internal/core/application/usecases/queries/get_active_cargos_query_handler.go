package queries

import (
	"context"

	"cargoflow/internal/core/domain/model/cargo"
	"cargoflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveCargosQueryHandler retrieves non-terminal cargos from the
// database. Filters out delivered and cancelled cargos to provide active
// workload visibility.
type GetActiveCargosQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveCargosQueryHandler creates a handler for active cargo queries.
// Requires a GORM database connection for query execution.
func NewGetActiveCargosQueryHandler(db *gorm.DB) GetActiveCargosQueryHandler {
	return GetActiveCargosQueryHandler{db: db}
}

// Handle executes the query to retrieve all active cargos. Results are sorted
// by cargo ID for consistent output.
func (h GetActiveCargosQueryHandler) Handle(
	ctx context.Context,
	query GetActiveCargosQuery,
) ([]GetActiveCargosQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cargos := make([]GetActiveCargosQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			status,
			priority,
			weight_kg,
			distance_km,
			driver_id IS NOT NULL
		FROM cargos
		WHERE status NOT IN (?, ?)
		ORDER BY id
	`, int(cargo.Delivered), int(cargo.Cancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveCargosQueryResponse
		var id, clientID uuid.UUID
		var status, priority int

		err = rows.Scan(
			&id,
			&clientID,
			&status,
			&priority,
			&resp.WeightKg,
			&resp.DistanceKm,
			&resp.HasCarrier,
		)
		if err != nil {
			return nil, err
		}

		cargoID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = cargoID

		ownerID, idErr := kernel.UUIDFromBytes(clientID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ClientID = ownerID

		resp.Status = cargo.Status(status).String()
		resp.Priority = cargo.Priority(priority).String()
		cargos = append(cargos, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cargos, nil
}
