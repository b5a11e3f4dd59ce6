package queries

import (
	"context"
	"time"

	"cargoflow/internal/core/domain/model/assignment"
	"cargoflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAssignmentHistoryQueryHandler retrieves a cargo's negotiation history
// from the database. Lazy expiry is applied at read time: a stored-pending
// row past its deadline is reported as expired without being written back.
type GetAssignmentHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentHistoryQueryHandler creates a handler for assignment
// history queries. Requires a GORM database connection for query execution.
func NewGetAssignmentHistoryQueryHandler(db *gorm.DB) GetAssignmentHistoryQueryHandler {
	return GetAssignmentHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve the cargo's assignments, newest
// proposal first.
func (h GetAssignmentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentHistoryQuery,
) ([]GetAssignmentHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	history := make([]GetAssignmentHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			driver_id,
			vehicle_id,
			status,
			assigned_at,
			expires_at,
			responded_at,
			rejection_reason,
			notes
		FROM assignments
		WHERE cargo_id = ?
		ORDER BY assigned_at DESC
	`, query.CargoID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAssignmentHistoryQueryResponse
		var id, driverID, vehicleID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&driverID,
			&vehicleID,
			&status,
			&resp.AssignedAt,
			&resp.ExpiresAt,
			&resp.RespondedAt,
			&resp.RejectionReason,
			&resp.Notes,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.DriverID, err = kernel.UUIDFromBytes(driverID[:])
		if err != nil {
			return nil, err
		}
		resp.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:])
		if err != nil {
			return nil, err
		}

		effective := assignment.Status(status)
		if effective == assignment.Pending && now.After(resp.ExpiresAt) {
			effective = assignment.Expired
		}
		resp.Status = effective.String()

		history = append(history, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
