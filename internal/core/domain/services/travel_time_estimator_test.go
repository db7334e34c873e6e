package services_test

import (
	"testing"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/vehicle"
	"parcels/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTravelTimeEstimator_Estimate(t *testing.T) {
	tests := []struct {
		name        string
		vehicleType vehicle.Type
		km          float64
		peak        bool
		minutes     int
		rangeMin    int
		rangeMax    int
	}{
		// 12.5 + 10 = 22.5, halfway between 20 and 25
		{name: "boda off-peak rounds half to even", vehicleType: vehicle.BodaBoda, km: 5, minutes: 20, rangeMin: 15, rangeMax: 30},
		// 18.75 + 10 = 28.75
		{name: "boda at peak", vehicleType: vehicle.BodaBoda, km: 5, peak: true, minutes: 30, rangeMin: 25, rangeMax: 40},
		// 11 + 10 = 21
		{name: "pickup short hop", vehicleType: vehicle.Pickup, km: 2, minutes: 20, rangeMin: 15, rangeMax: 30},
		// 0.25 + 10 rounds to 10, reported as the 15 minute floor
		{name: "tiny distance hits the floor", vehicleType: vehicle.BodaBoda, km: 0.1, minutes: 15, rangeMin: 10, rangeMax: 20},
		// 200 + 10 = 210
		{name: "van long haul", vehicleType: vehicle.Van, km: 40, minutes: 210, rangeMin: 205, rangeMax: 220},
		// 20038 × 5.5 × 1.5 + 10 = 165323.5
		{name: "pickup at peak across half the globe", vehicleType: vehicle.Pickup, km: kernel.MaxDistanceKm, peak: true, minutes: 165325, rangeMin: 165320, rangeMax: 165335},
	}

	estimator := services.NewTravelTimeEstimator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := kernel.NewDistance(tt.km)
			require.NoError(t, err)

			got, err := estimator.Estimate(tt.vehicleType, d, tt.peak)

			require.NoError(t, err)
			assert.Equal(t, tt.minutes, got.Minutes)
			assert.Equal(t, tt.rangeMin, got.RangeMin)
			assert.Equal(t, tt.rangeMax, got.RangeMax)
			assert.Equal(t, tt.peak, got.IsPeakHour)
			assert.Equal(t, tt.vehicleType, got.VehicleType)
		})
	}
}

func TestTravelTimeEstimator_Errors(t *testing.T) {
	estimator := services.NewTravelTimeEstimator()

	_, err := estimator.Estimate(vehicle.Type("plane"), kernel.Distance{}, false)
	require.ErrorIs(t, err, vehicle.ErrInvalidVehicleType)

	_, err = estimator.Estimate(vehicle.Car, kernel.Distance{}, false)
	require.ErrorIs(t, err, kernel.ErrInvalidDistance)
}

func TestTravelTimeEstimator_RangeBracketsEstimateUpToMaxDistance(t *testing.T) {
	estimator := services.NewTravelTimeEstimator()

	for _, vt := range vehicle.Types() {
		for _, km := range []float64{0.01, 1, 250, 5000, kernel.MaxDistanceKm} {
			d, err := kernel.NewDistance(km)
			require.NoError(t, err)

			got, err := estimator.Estimate(vt, d, true)

			require.NoError(t, err)
			assert.LessOrEqual(t, got.RangeMin, got.Minutes, "%s at %v km", vt, km)
			assert.Less(t, got.Minutes, got.RangeMax, "%s at %v km", vt, km)
		}
	}
}
