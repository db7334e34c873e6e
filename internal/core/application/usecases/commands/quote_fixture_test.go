package commands_test

import (
	"testing"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/pricing"
	"parcels/internal/core/domain/model/quote"
	"parcels/internal/core/domain/model/vehicle"
	"parcels/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

func newOpenQuote(t *testing.T, createdAt time.Time, ttl time.Duration) *quote.Quote {
	t.Helper()

	distance, err := kernel.NewDistance(4)
	require.NoError(t, err)
	p := smallParcel(t)
	conditions := pricing.ConditionsAt(createdAt, false)

	breakdown, err := services.NewPriceCalculator().Calculate(vehicle.Car, distance, p, conditions)
	require.NoError(t, err)
	estimate, err := services.NewTravelTimeEstimator().Estimate(vehicle.Car, distance, conditions.IsPeakHour())
	require.NoError(t, err)

	route := quote.Route{Pickup: nairobiCBD(t), Dropoff: westlands(t), Distance: distance}
	q, err := quote.NewQuote(kernel.NewUUID(), route, p, conditions, breakdown, estimate, createdAt, ttl)
	require.NoError(t, err)
	return q
}
