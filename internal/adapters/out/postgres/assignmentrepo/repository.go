package assignmentrepo

import (
	"context"
	"errors"
	"time"

	"cargoflow/internal/core/domain/model/assignment"
	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new assignment to the database.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
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

// Update saves an existing assignment, predicated on the version the
// aggregate was loaded with. Zero matching rows means a concurrent writer won
// and is surfaced as a conflict.
func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("assignment", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an assignment by ID.
func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetCurrentForCargo retrieves the cargo's newest assignment by proposal
// time. Returns ObjectNotFound when the cargo has never been proposed to
// anyone.
func (r *GormAssignmentRepository) GetCurrentForCargo(
	ctx context.Context,
	cargoID kernel.UUID,
) (*assignment.Assignment, error) {
	if err := cargoID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("cargo_id = ?", cargoID.Bytes()).
		Order("assigned_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment for cargo", cargoID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetHistoryForCargo retrieves the cargo's full negotiation history, newest
// first.
func (r *GormAssignmentRepository) GetHistoryForCargo(
	ctx context.Context,
	cargoID kernel.UUID,
) ([]*assignment.Assignment, error) {
	if err := cargoID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("cargo_id = ?", cargoID.Bytes()).
		Order("assigned_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	assignments := make([]*assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

// GetAllOverduePending retrieves every assignment still stored as pending
// whose negotiation window closed before now. Feed of the expiry sweep.
func (r *GormAssignmentRepository) GetAllOverduePending(
	ctx context.Context,
	now time.Time,
) ([]*assignment.Assignment, error) {
	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND expires_at < ?", int(assignment.Pending), now).
		Order("expires_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	assignments := make([]*assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}
