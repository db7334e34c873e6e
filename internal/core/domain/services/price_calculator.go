package services

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/pricing"
	"parcels/internal/core/domain/model/vehicle"
)

// PriceCalculator computes the price of a delivery for a given vehicle type.
//
// Algorithm:
//   - subtotal = (base fare + km × per-km rate) × size × weight × quantity multipliers
//   - final = subtotal × product of active surcharges, clamped to [pricing.MinPrice, pricing.MaxPrice]
//
// Intermediate values stay unrounded; amounts are rounded to whole shillings only
// when the Breakdown is built.
//
// Example usage:
//
//	calc := NewPriceCalculator()
//	d, _ := kernel.NewDistance(5)
//	p, _ := parcel.NewParcel(parcel.Medium, parcel.Light, 1)
//	b, err := calc.Calculate(vehicle.BodaBoda, d, p, pricing.Conditions{})
//	// b.FinalPrice == 270
type PriceCalculator struct{}

func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{}
}

// Calculate returns the itemised price.
//
// Returns:
//   - error wrapping vehicle.ErrInvalidVehicleType for an unknown vehicle type
//   - error wrapping kernel.ErrInvalidDistance for a distance not built by kernel.NewDistance
//   - parcel validation errors for a parcel not built by parcel.NewParcel
func (c PriceCalculator) Calculate(
	vehicleType vehicle.Type,
	distance kernel.Distance,
	p parcel.Parcel,
	conditions pricing.Conditions,
) (pricing.Breakdown, error) {
	profile, profileErr := vehicle.ProfileOf(vehicleType)
	if err := errors.Join(profileErr, distance.Validate(), p.Validate()); err != nil {
		return pricing.Breakdown{}, err
	}

	sizeMult, err := pricing.SizeMultiplier(p.Size())
	if err != nil {
		return pricing.Breakdown{}, err
	}
	weightMult, err := pricing.WeightMultiplier(p.Weight())
	if err != nil {
		return pricing.Breakdown{}, err
	}
	quantityMult := pricing.QuantityMultiplier(p.Quantity())

	distanceCost := distance.Km() * profile.PerKmRate
	subtotal := (profile.BaseFare + distanceCost) * sizeMult * weightMult * quantityMult

	surcharges := conditions.Surcharges()
	surchargeMult := pricing.SurchargeMultiplier(surcharges)

	final := pricing.ClampPrice(subtotal * surchargeMult)

	return pricing.Breakdown{
		VehicleType:         vehicleType,
		BaseFare:            pricing.RoundShillings(profile.BaseFare),
		DistanceCost:        pricing.RoundShillings(distanceCost),
		DistanceKm:          distance.RoundedKm(),
		SizeMultiplier:      sizeMult,
		WeightMultiplier:    weightMult,
		QuantityMultiplier:  pricing.RoundMultiplier(quantityMult),
		Subtotal:            pricing.RoundShillings(subtotal),
		Surcharges:          surcharges,
		SurchargeMultiplier: pricing.RoundMultiplier(surchargeMult),
		FinalPrice:          pricing.RoundShillings(final),
		Currency:            pricing.Currency,
	}, nil
}
