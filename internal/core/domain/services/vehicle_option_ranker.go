package services

import (
	"errors"
	"math"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/pricing"
	"parcels/internal/core/domain/model/vehicle"
)

// VehicleOptionRanker lists every vehicle type for a delivery and recommends one.
//
// Business rules:
//   - options follow the registry order of vehicle.Types
//   - price and time are computed even for vehicles that cannot carry the parcel
//   - the cheapest eligible option is recommended, the first one winning ties
//   - nothing is recommended when no vehicle can carry the parcel
type VehicleOptionRanker struct {
	calculator PriceCalculator
	estimator  TravelTimeEstimator
}

func NewVehicleOptionRanker(calculator PriceCalculator, estimator TravelTimeEstimator) VehicleOptionRanker {
	return VehicleOptionRanker{calculator: calculator, estimator: estimator}
}

// Rank prices the parcel with every vehicle type under the given conditions.
// The travel-time estimate only depends on the peak flag of the conditions.
func (r VehicleOptionRanker) Rank(distance kernel.Distance, p parcel.Parcel, conditions pricing.Conditions) ([]pricing.VehicleOption, error) {
	if err := errors.Join(distance.Validate(), p.Validate()); err != nil {
		return nil, err
	}

	types := vehicle.Types()
	options := make([]pricing.VehicleOption, 0, len(types))

	for _, vt := range types {
		option, err := r.option(vt, distance, p, conditions)
		if err != nil {
			return nil, err
		}
		options = append(options, option)
	}

	if best := cheapestEligible(options); best >= 0 {
		options[best].IsRecommended = true
	}

	return options, nil
}

func (r VehicleOptionRanker) option(
	vt vehicle.Type,
	distance kernel.Distance,
	p parcel.Parcel,
	conditions pricing.Conditions,
) (pricing.VehicleOption, error) {
	profile, err := vehicle.ProfileOf(vt)
	if err != nil {
		return pricing.VehicleOption{}, err
	}

	breakdown, err := r.calculator.Calculate(vt, distance, p, conditions)
	if err != nil {
		return pricing.VehicleOption{}, err
	}

	estimate, err := r.estimator.Estimate(vt, distance, conditions.IsPeakHour())
	if err != nil {
		return pricing.VehicleOption{}, err
	}

	rejection := profile.Capacity.Check(p)

	return pricing.VehicleOption{
		VehicleType:   vt,
		DisplayName:   vt.DisplayName(),
		CanHandle:     rejection == vehicle.Accepted,
		Reason:        rejection.Reason(),
		Price:         breakdown.FinalPrice,
		Pricing:       breakdown,
		EstimatedTime: estimate,
		MaxWeightKg:   profile.Capacity.MaxWeightKg,
	}, nil
}

// cheapestEligible returns the index of the cheapest option that can carry the
// parcel, or -1. Only a strictly lower price replaces the current best.
func cheapestEligible(options []pricing.VehicleOption) int {
	var (
		best      = -1
		bestPrice = int64(math.MaxInt64)
	)

	for i, o := range options {
		if !o.CanHandle {
			continue
		}
		if o.Price < bestPrice {
			bestPrice = o.Price
			best = i
		}
	}

	return best
}
