package vehicle

import "parcels/internal/core/domain/model/parcel"

// Capacity is the largest parcel a vehicle type accepts.
type Capacity struct {
	MaxSize     parcel.SizeTier
	MaxWeight   parcel.WeightTier
	MaxWeightKg int
}

// Profile is the static tariff and performance data of a vehicle type.
// Monetary values are in Kenya shillings.
type Profile struct {
	BaseFare     float64
	PerKmRate    float64
	MinutesPerKm float64
	Capacity     Capacity
}

var profiles = map[Type]Profile{
	BodaBoda: {
		BaseFare:     100,
		PerKmRate:    25,
		MinutesPerKm: 2.5,
		Capacity:     Capacity{MaxSize: parcel.Medium, MaxWeight: parcel.MediumWeight, MaxWeightKg: 20},
	},
	TukTuk: {
		BaseFare:     150,
		PerKmRate:    35,
		MinutesPerKm: 3.5,
		Capacity:     Capacity{MaxSize: parcel.Large, MaxWeight: parcel.Heavy, MaxWeightKg: 100},
	},
	Car: {
		BaseFare:     250,
		PerKmRate:    50,
		MinutesPerKm: 4.0,
		Capacity:     Capacity{MaxSize: parcel.Large, MaxWeight: parcel.Heavy, MaxWeightKg: 80},
	},
	Van: {
		BaseFare:     400,
		PerKmRate:    70,
		MinutesPerKm: 5.0,
		Capacity:     Capacity{MaxSize: parcel.ExtraLarge, MaxWeight: parcel.VeryHeavy, MaxWeightKg: 500},
	},
	Pickup: {
		BaseFare:     600,
		PerKmRate:    90,
		MinutesPerKm: 5.5,
		Capacity:     Capacity{MaxSize: parcel.ExtraLarge, MaxWeight: parcel.VeryHeavy, MaxWeightKg: 1000},
	},
}

// ProfileOf returns the profile of t, or an error wrapping ErrInvalidVehicleType.
func ProfileOf(t Type) (Profile, error) {
	if err := t.Validate(); err != nil {
		return Profile{}, err
	}
	return profiles[t], nil
}

// Rejection says why a vehicle cannot carry a parcel.
type Rejection int

const (
	Accepted Rejection = iota
	TooLarge
	TooHeavy
)

// Reason is the customer-facing explanation, empty for Accepted.
func (r Rejection) Reason() string {
	switch r {
	case TooLarge:
		return "Package too large for this vehicle"
	case TooHeavy:
		return "Package too heavy for this vehicle"
	default:
		return ""
	}
}

// Check compares the parcel tiers with the capacity by ordinal.
// When both size and weight exceed the capacity, size is reported.
func (c Capacity) Check(p parcel.Parcel) Rejection {
	if !p.Size().Fits(c.MaxSize) {
		return TooLarge
	}
	if !p.Weight().Fits(c.MaxWeight) {
		return TooHeavy
	}
	return Accepted
}
