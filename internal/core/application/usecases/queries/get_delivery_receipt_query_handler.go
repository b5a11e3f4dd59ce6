package queries

import (
	"context"
	"database/sql"
	"errors"

	"cargoflow/internal/core/domain/model/cargo"
	"cargoflow/internal/core/ports"
	"cargoflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryReceiptQueryHandler prices a completed delivery. Only delivered
// cargos have a receipt; anything still in flight is an invalid-state error.
type GetDeliveryReceiptQueryHandler struct {
	db        *gorm.DB
	estimator ports.PricingEstimator
}

// NewGetDeliveryReceiptQueryHandler creates a handler for receipt queries.
func NewGetDeliveryReceiptQueryHandler(
	db *gorm.DB,
	estimator ports.PricingEstimator,
) GetDeliveryReceiptQueryHandler {
	return GetDeliveryReceiptQueryHandler{db: db, estimator: estimator}
}

// Handle loads the cargo's billing attributes and consults the pricing
// estimator.
func (h GetDeliveryReceiptQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryReceiptQuery,
) (GetDeliveryReceiptQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryReceiptQueryResponse{}, err
	}

	var status, priority int
	var weightKg, distanceKm float64

	row := h.db.WithContext(ctx).Raw(`
		SELECT status, priority, weight_kg, distance_km
		FROM cargos
		WHERE id = ?
	`, query.CargoID().Bytes()).Row()

	err := row.Scan(&status, &priority, &weightKg, &distanceKm)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetDeliveryReceiptQueryResponse{},
				errs.NewObjectNotFoundError("cargo", query.CargoID().String())
		}
		return GetDeliveryReceiptQueryResponse{}, err
	}

	if cargo.Status(status) != cargo.Delivered {
		return GetDeliveryReceiptQueryResponse{},
			errs.NewInvalidStateError("cargo is not delivered yet")
	}

	priorityName := cargo.Priority(priority).String()

	amount, err := h.estimator.Estimate(weightKg, distanceKm, priorityName)
	if err != nil {
		return GetDeliveryReceiptQueryResponse{}, err
	}

	return GetDeliveryReceiptQueryResponse{
		CargoID:    query.CargoID(),
		Priority:   priorityName,
		WeightKg:   weightKg,
		DistanceKm: distanceKm,
		Amount:     amount,
	}, nil
}
