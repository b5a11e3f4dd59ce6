// Package cargorepo provides data transfer objects and mapping functions for
// cargo persistence. This package implements the repository pattern for the
// cargo aggregate, handling the conversion between domain entities and
// database representations.
package cargorepo

import (
	"cargoflow/internal/core/domain/model/cargo"
	"cargoflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CargoDTO represents the database structure for persisting cargo aggregates.
// The version column is the optimistic-concurrency token: every update
// predicates on it and bumps it by one.
type CargoDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status      int        `gorm:"type:int;not null;index"`
	Priority    int        `gorm:"type:int;not null"`
	WeightKg    float64    `gorm:"type:numeric;not null"`
	DistanceKm  float64    `gorm:"type:numeric;not null"`
	DriverID    *uuid.UUID `gorm:"type:uuid;index"`
	VehicleID   *uuid.UUID `gorm:"type:uuid"`
	ClientPhone string     `gorm:"type:varchar(32);not null"`
	DriverPhone string     `gorm:"type:varchar(32)"`
	Version     int        `gorm:"type:int;not null"`
}

// TableName specifies the database table name for cargo entities.
func (CargoDTO) TableName() string {
	return "cargos"
}

// fromDomain converts a cargo aggregate to its database representation.
func fromDomain(aggregate *cargo.Cargo) CargoDTO {
	var driverID, vehicleID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}
	if id := aggregate.VehicleID(); id != nil {
		raw := id.Bytes()
		vehicleID = &raw
	}

	return CargoDTO{
		ID:          aggregate.ID().Bytes(),
		ClientID:    aggregate.ClientID().Bytes(),
		Status:      int(aggregate.Status()),
		Priority:    int(aggregate.Priority()),
		WeightKg:    aggregate.WeightKg(),
		DistanceKm:  aggregate.DistanceKm(),
		DriverID:    driverID,
		VehicleID:   vehicleID,
		ClientPhone: aggregate.ClientPhone(),
		DriverPhone: aggregate.DriverPhone(),
		Version:     aggregate.Version(),
	}
}

// toDomain converts a database DTO to a cargo aggregate using RestoreCargo.
func toDomain(dto CargoDTO) (*cargo.Cargo, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var driverID, vehicleID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}
	if dto.VehicleID != nil {
		vID, vehicleErr := kernel.UUIDFromBytes((*dto.VehicleID)[:])
		if vehicleErr != nil {
			return nil, vehicleErr
		}
		vehicleID = &vID
	}

	return cargo.RestoreCargo(
		id,
		clientID,
		cargo.Status(dto.Status),
		cargo.Priority(dto.Priority),
		dto.WeightKg,
		dto.DistanceKm,
		driverID,
		vehicleID,
		dto.ClientPhone,
		dto.DriverPhone,
		dto.Version,
	)
}
