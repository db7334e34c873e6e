package pricing

import (
	"fmt"

	"parcels/internal/core/domain/model/vehicle"
)

// Breakdown is the itemised price of one delivery by one vehicle type.
type Breakdown struct {
	VehicleType         vehicle.Type
	BaseFare            int64
	DistanceCost        int64
	DistanceKm          float64
	SizeMultiplier      float64
	WeightMultiplier    float64
	QuantityMultiplier  float64
	Subtotal            int64
	Surcharges          []Surcharge
	SurchargeMultiplier float64
	FinalPrice          int64
	Currency            string
}

// TimeEstimate is the expected door-to-door time of a delivery.
type TimeEstimate struct {
	VehicleType vehicle.Type
	Minutes     int
	RangeMin    int
	RangeMax    int
	IsPeakHour  bool
}

// Range formats the estimate window, e.g. "20-35 mins".
func (e TimeEstimate) Range() string {
	return fmt.Sprintf("%d-%d mins", e.RangeMin, e.RangeMax)
}

// VehicleOption is one row of the vehicle picker.
type VehicleOption struct {
	VehicleType   vehicle.Type
	DisplayName   string
	CanHandle     bool
	Reason        string
	Price         int64
	Pricing       Breakdown
	EstimatedTime TimeEstimate
	MaxWeightKg   int
	IsRecommended bool
}
