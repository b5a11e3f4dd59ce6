// Package assignmentrepo provides data transfer objects and mapping functions
// for assignment persistence. This package implements the repository pattern
// for the assignment aggregate, handling the conversion between domain
// entities and database representations.
package assignmentrepo

import (
	"time"

	"cargoflow/internal/core/domain/model/assignment"
	"cargoflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting assignment
// aggregates. Stored status never reflects lazy expiry; the expiry sweep is
// the only writer that materializes it.
type AssignmentDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CargoID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	DriverID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	VehicleID       uuid.UUID  `gorm:"type:uuid;not null"`
	Status          int        `gorm:"type:int;not null;index"`
	DriverPhone     string     `gorm:"type:varchar(32)"`
	AssignedAt      time.Time  `gorm:"not null"`
	ExpiresAt       time.Time  `gorm:"not null;index"`
	RespondedAt     *time.Time
	RejectionReason string     `gorm:"type:text"`
	Notes           string     `gorm:"type:text"`
	Version         int        `gorm:"type:int;not null"`
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment aggregate to its database representation.
func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:              aggregate.ID().Bytes(),
		CargoID:         aggregate.CargoID().Bytes(),
		DriverID:        aggregate.DriverID().Bytes(),
		VehicleID:       aggregate.VehicleID().Bytes(),
		Status:          int(aggregate.StoredStatus()),
		DriverPhone:     aggregate.DriverPhone(),
		AssignedAt:      aggregate.AssignedAt(),
		ExpiresAt:       aggregate.ExpiresAt(),
		RespondedAt:     aggregate.RespondedAt(),
		RejectionReason: aggregate.RejectionReason(),
		Notes:           aggregate.Notes(),
		Version:         aggregate.Version(),
	}
}

// toDomain converts a database DTO to an assignment aggregate using
// RestoreAssignment.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cargoID, err := kernel.UUIDFromBytes(dto.CargoID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(
		id,
		cargoID,
		driverID,
		vehicleID,
		assignment.Status(dto.Status),
		dto.DriverPhone,
		dto.AssignedAt,
		dto.ExpiresAt,
		dto.RespondedAt,
		dto.RejectionReason,
		dto.Notes,
		dto.Version,
	)
}
