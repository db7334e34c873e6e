package services

import (
	"math"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/pricing"
	"parcels/internal/core/domain/model/vehicle"
)

// TravelTimeEstimator estimates how long a delivery takes door to door.
type TravelTimeEstimator struct{}

func NewTravelTimeEstimator() TravelTimeEstimator {
	return TravelTimeEstimator{}
}

// Estimate multiplies the distance by the vehicle's minutes per km (slower by
// pricing.PeakTimeFactor at peak), adds handling time and rounds to the nearest
// five minutes, halves going to the even multiple.
func (e TravelTimeEstimator) Estimate(vehicleType vehicle.Type, distance kernel.Distance, peakHour bool) (pricing.TimeEstimate, error) {
	profile, err := vehicle.ProfileOf(vehicleType)
	if err != nil {
		return pricing.TimeEstimate{}, err
	}
	if err := distance.Validate(); err != nil {
		return pricing.TimeEstimate{}, err
	}

	perKm := profile.MinutesPerKm
	if peakHour {
		perKm *= pricing.PeakTimeFactor
	}

	total := distance.Km()*perKm + pricing.HandlingMinutes
	total = math.RoundToEven(total/5) * 5
	minutes := int(total)

	return pricing.TimeEstimate{
		VehicleType: vehicleType,
		Minutes:     max(pricing.MinEstimateMinutes, minutes),
		RangeMin:    max(10, minutes-5),
		RangeMax:    minutes + 10,
		IsPeakHour:  peakHour,
	}, nil
}
