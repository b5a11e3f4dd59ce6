package queries

import (
	"errors"

	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/pkg/guard"
)

var (
	ErrGetDeliveryReceiptQueryIsNotConstructed = errors.New(
		"GetDeliveryReceiptQuery must be created via NewGetDeliveryReceiptQuery constructor",
	)
)

// GetDeliveryReceiptQuery produces the price estimate for a delivered cargo.
// The estimate is consulted once per request; the engine stores no prices.
type GetDeliveryReceiptQuery struct { //nolint:recvcheck //using for validation
	cargoID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryReceiptQuery creates a query for a delivered cargo's receipt.
func NewGetDeliveryReceiptQuery(cargoID kernel.UUID) (GetDeliveryReceiptQuery, error) {
	if err := cargoID.Validate(); err != nil {
		return GetDeliveryReceiptQuery{}, err
	}

	return GetDeliveryReceiptQuery{
		cargoID: cargoID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryReceiptQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryReceiptQueryIsNotConstructed)
}

// CargoID returns the cargo whose receipt is requested.
func (q GetDeliveryReceiptQuery) CargoID() kernel.UUID {
	return q.cargoID
}

// GetDeliveryReceiptQueryResponse is the priced receipt for one delivery.
type GetDeliveryReceiptQueryResponse struct {
	CargoID    kernel.UUID
	Priority   string
	WeightKg   float64
	DistanceKm float64
	Amount     float64
}
