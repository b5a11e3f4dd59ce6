// Package pricing provides a tariff-table implementation of the pricing port.
package pricing

import (
	"cargoflow/internal/core/domain/model/cargo"
	"cargoflow/internal/pkg/errs"
)

// Tariff rates in whole currency units.
const (
	baseFee    = 5.0
	ratePerKg  = 0.4
	ratePerKm  = 1.2
	minimumFee = 10.0
)

func priorityMultipliers() map[string]float64 {
	return map[string]float64{
		cargo.PriorityLow.String():    0.9,
		cargo.PriorityNormal.String(): 1.0,
		cargo.PriorityHigh.String():   1.3,
		cargo.PriorityUrgent.String(): 1.8,
	}
}

// TariffEstimator prices deliveries from a flat tariff table. Weight and
// distance contribute linearly; priority scales the total.
type TariffEstimator struct{}

// NewTariffEstimator creates a tariff-based pricing estimator.
func NewTariffEstimator() TariffEstimator {
	return TariffEstimator{}
}

// Estimate computes the delivery price for the given billing attributes.
func (e TariffEstimator) Estimate(weightKg, distanceKm float64, priority string) (float64, error) {
	if weightKg <= 0 {
		return 0, errs.NewValueIsInvalidError("weightKg")
	}
	if distanceKm <= 0 {
		return 0, errs.NewValueIsInvalidError("distanceKm")
	}

	multiplier, ok := priorityMultipliers()[priority]
	if !ok {
		return 0, errs.NewValueIsInvalidError("priority")
	}

	amount := (baseFee + weightKg*ratePerKg + distanceKm*ratePerKm) * multiplier
	if amount < minimumFee {
		amount = minimumFee
	}

	return amount, nil
}
