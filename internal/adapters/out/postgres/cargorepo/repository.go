package cargorepo

import (
	"context"
	"errors"

	"cargoflow/internal/core/domain/model/cargo"
	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCargoRepository implements CargoRepository using GORM.
type GormCargoRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCargoRepository creates a new GORM cargo repository.
func NewGormCargoRepository(db *gorm.DB, tracker aggregateTracker) *GormCargoRepository {
	return &GormCargoRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cargo to the database.
func (r *GormCargoRepository) Add(ctx context.Context, aggregate *cargo.Cargo) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing cargo, predicated on the version the aggregate was
// loaded with. A concurrent writer that got there first leaves zero matching
// rows, surfaced as a conflict.
func (r *GormCargoRepository) Update(ctx context.Context, aggregate *cargo.Cargo) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&CargoDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("cargo", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a cargo by ID.
func (r *GormCargoRepository) Get(ctx context.Context, id kernel.UUID) (*cargo.Cargo, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CargoDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cargo", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves every cargo whose lifecycle has not reached a
// terminal status.
func (r *GormCargoRepository) GetAllActive(ctx context.Context) ([]*cargo.Cargo, error) {
	var dtos []CargoDTO
	err := r.db.WithContext(ctx).
		Where("status NOT IN ?", []int{int(cargo.Delivered), int(cargo.Cancelled)}).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	cargos := make([]*cargo.Cargo, 0, len(dtos))
	for _, dto := range dtos {
		c, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		cargos = append(cargos, c)
	}

	return cargos, nil
}
