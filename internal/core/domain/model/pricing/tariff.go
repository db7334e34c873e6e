package pricing

import (
	"math"
	"strconv"

	"parcels/internal/core/domain/model/parcel"
)

const (
	// MinPrice and MaxPrice bound every final price, in shillings.
	MinPrice = 100
	MaxPrice = 50000

	Currency = "KSh"

	// QuantityStep is the extra share of the subtotal charged per item beyond the first.
	QuantityStep = 0.3

	// PeakTimeFactor slows every vehicle during peak hours.
	PeakTimeFactor = 1.5

	// HandlingMinutes is added to every travel time for pickup and drop-off.
	HandlingMinutes = 10

	// MinEstimateMinutes floors the reported travel time.
	MinEstimateMinutes = 15
)

// Surcharge is a named multiplier applied on top of the subtotal.
type Surcharge struct {
	Name       string
	Multiplier float64
}

var (
	PeakHourSurcharge = Surcharge{Name: "Peak Hour", Multiplier: 1.25}
	NightSurcharge    = Surcharge{Name: "Night Delivery", Multiplier: 1.15}
	RainSurcharge     = Surcharge{Name: "Weather (Rain)", Multiplier: 1.2}
)

var sizeMultipliers = map[parcel.SizeTier]float64{
	parcel.Small:      1.0,
	parcel.Medium:     1.2,
	parcel.Large:      1.5,
	parcel.ExtraLarge: 2.0,
}

var weightMultipliers = map[parcel.WeightTier]float64{
	parcel.Light:        1.0,
	parcel.MediumWeight: 1.15,
	parcel.Heavy:        1.35,
	parcel.VeryHeavy:    1.6,
}

// SizeMultiplier returns the price factor of a size tier.
func SizeMultiplier(s parcel.SizeTier) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return sizeMultipliers[s], nil
}

// WeightMultiplier returns the price factor of a weight tier.
func WeightMultiplier(w parcel.WeightTier) (float64, error) {
	if err := w.Validate(); err != nil {
		return 0, err
	}
	return weightMultipliers[w], nil
}

// QuantityMultiplier charges the first item in full and QuantityStep for each extra one.
func QuantityMultiplier(quantity int) float64 {
	return 1 + float64(quantity-1)*QuantityStep
}

// SurchargeMultiplier is the product of the given surcharges, 1 when there are none.
func SurchargeMultiplier(surcharges []Surcharge) float64 {
	m := 1.0
	for _, s := range surcharges {
		m *= s.Multiplier
	}
	return m
}

// RoundMultiplier rounds a factor to two decimals as it is shown in a breakdown.
// The exact binary value decides ties, so 1.725 (stored just below) gives 1.72.
func RoundMultiplier(m float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(m, 'f', 2, 64), 64)
	if err != nil {
		return m
	}
	return r
}

// ClampPrice bounds an amount to [MinPrice, MaxPrice].
func ClampPrice(amount float64) float64 {
	return math.Min(math.Max(amount, MinPrice), MaxPrice)
}

// RoundShillings rounds to the nearest whole shilling, halves going down.
func RoundShillings(amount float64) int64 {
	return int64(math.Ceil(amount - 0.5))
}
