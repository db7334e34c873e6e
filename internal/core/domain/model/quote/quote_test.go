package quote_test

import (
	"testing"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/pricing"
	"parcels/internal/core/domain/model/quote"
	"parcels/internal/core/domain/model/vehicle"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2026, 5, 12, 10, 0, 0, 0, time.UTC)

type fixture struct {
	route      quote.Route
	parcel     parcel.Parcel
	conditions pricing.Conditions
	breakdown  pricing.Breakdown
	estimate   pricing.TimeEstimate
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	pickup, err := kernel.NewLocation(-1.2864, 36.8172)
	require.NoError(t, err)
	dropoff, err := kernel.NewLocation(-1.2676, 36.8108)
	require.NoError(t, err)
	distance, err := kernel.NewDistance(2.2)
	require.NoError(t, err)
	p, err := parcel.NewParcel(parcel.Small, parcel.Light, 1)
	require.NoError(t, err)

	return fixture{
		route:      quote.Route{Pickup: pickup, Dropoff: dropoff, Distance: distance},
		parcel:     p,
		conditions: pricing.NewConditions(false, false, false),
		breakdown: pricing.Breakdown{
			VehicleType: vehicle.BodaBoda,
			BaseFare:    100,
			FinalPrice:  155,
			Currency:    pricing.Currency,
		},
		estimate: pricing.TimeEstimate{VehicleType: vehicle.BodaBoda, Minutes: 15, RangeMin: 10, RangeMax: 25},
	}
}

func (f fixture) newQuote(t *testing.T) *quote.Quote {
	t.Helper()
	q, err := quote.NewQuote(kernel.NewUUID(), f.route, f.parcel, f.conditions, f.breakdown, f.estimate, createdAt, 15*time.Minute)
	require.NoError(t, err)
	return q
}

func TestNewQuote(t *testing.T) {
	f := newFixture(t)
	id := kernel.NewUUID()

	q, err := quote.NewQuote(id, f.route, f.parcel, f.conditions, f.breakdown, f.estimate, createdAt, 15*time.Minute)

	require.NoError(t, err)
	require.NoError(t, q.Validate())
	assert.Equal(t, id, q.ID())
	assert.Equal(t, vehicle.BodaBoda, q.VehicleType())
	assert.Equal(t, quote.Open, q.Status())
	assert.Equal(t, int64(155), q.Pricing().FinalPrice)
	assert.Equal(t, 15, q.Estimate().Minutes)
	assert.Equal(t, createdAt, q.CreatedAt())
	assert.Equal(t, createdAt.Add(15*time.Minute), q.ExpiresAt())
	samePickup, err := q.Route().Pickup.IsEqual(f.route.Pickup)
	require.NoError(t, err)
	assert.True(t, samePickup)
}

func TestNewQuote_Invalid(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		mutate func(*fixture, *kernel.UUID, *time.Duration)
		target error
	}{
		{
			name:   "missing id",
			mutate: func(_ *fixture, id *kernel.UUID, _ *time.Duration) { *id = kernel.UUID{} },
			target: errs.ErrValueIsRequired,
		},
		{
			name:   "unconstructed distance",
			mutate: func(f *fixture, _ *kernel.UUID, _ *time.Duration) { f.route.Distance = kernel.Distance{} },
			target: kernel.ErrInvalidDistance,
		},
		{
			name:   "unknown vehicle",
			mutate: func(f *fixture, _ *kernel.UUID, _ *time.Duration) { f.breakdown.VehicleType = "rocket" },
			target: vehicle.ErrInvalidVehicleType,
		},
		{
			name:   "estimate for another vehicle",
			mutate: func(f *fixture, _ *kernel.UUID, _ *time.Duration) { f.estimate.VehicleType = vehicle.Van },
			target: errs.ErrValueIsInvalid,
		},
		{
			name:   "price above maximum",
			mutate: func(f *fixture, _ *kernel.UUID, _ *time.Duration) { f.breakdown.FinalPrice = pricing.MaxPrice + 1 },
			target: errs.ErrValueIsOutOfRange,
		},
		{
			name:   "non-positive ttl",
			mutate: func(_ *fixture, _ *kernel.UUID, ttl *time.Duration) { *ttl = 0 },
			target: errs.ErrValueIsInvalid,
		},
		{
			name:   "unconstructed parcel",
			mutate: func(f *fixture, _ *kernel.UUID, _ *time.Duration) { f.parcel = parcel.Parcel{} },
			target: parcel.ErrParcelIsNotConstructed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local := f
			id := kernel.NewUUID()
			ttl := 15 * time.Minute
			tt.mutate(&local, &id, &ttl)

			q, err := quote.NewQuote(id, local.route, local.parcel, local.conditions, local.breakdown, local.estimate, createdAt, ttl)

			require.ErrorIs(t, err, tt.target)
			assert.Nil(t, q)
		})
	}
}

func TestRestoreQuote_RejectsUnknownStatus(t *testing.T) {
	f := newFixture(t)

	_, err := quote.RestoreQuote(kernel.NewUUID(), f.route, f.parcel, f.conditions, f.breakdown, f.estimate,
		quote.Unknown, createdAt, createdAt.Add(time.Minute))

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestQuote_Book(t *testing.T) {
	f := newFixture(t)

	t.Run("should book an open quote before its deadline", func(t *testing.T) {
		q := f.newQuote(t)

		require.NoError(t, q.Book(createdAt.Add(15*time.Minute)))
		assert.Equal(t, quote.Booked, q.Status())
	})

	t.Run("should refuse an expired deadline", func(t *testing.T) {
		q := f.newQuote(t)

		err := q.Book(createdAt.Add(16 * time.Minute))

		require.ErrorIs(t, err, quote.ErrQuoteExpired)
		assert.Equal(t, quote.Open, q.Status())
	})

	t.Run("should refuse booking twice", func(t *testing.T) {
		q := f.newQuote(t)
		require.NoError(t, q.Book(createdAt))

		require.ErrorIs(t, q.Book(createdAt), quote.ErrQuoteNotOpen)
	})
}

func TestQuote_Expire(t *testing.T) {
	f := newFixture(t)

	t.Run("should expire after the deadline", func(t *testing.T) {
		q := f.newQuote(t)

		require.NoError(t, q.Expire(createdAt.Add(time.Hour)))
		assert.Equal(t, quote.Expired, q.Status())
		require.ErrorIs(t, q.Book(createdAt), quote.ErrQuoteNotOpen)
	})

	t.Run("should not expire a quote that is still valid", func(t *testing.T) {
		q := f.newQuote(t)

		require.ErrorIs(t, q.Expire(createdAt.Add(time.Minute)), errs.ErrValueIsInvalid)
		assert.Equal(t, quote.Open, q.Status())
	})

	t.Run("should not expire a booked quote", func(t *testing.T) {
		q := f.newQuote(t)
		require.NoError(t, q.Book(createdAt))

		require.ErrorIs(t, q.Expire(createdAt.Add(time.Hour)), quote.ErrQuoteNotOpen)
	})
}

func TestQuote_Validate(t *testing.T) {
	var q *quote.Quote
	require.ErrorIs(t, q.Validate(), quote.ErrQuoteIsNotConstructed)
	require.ErrorIs(t, (&quote.Quote{}).Validate(), quote.ErrQuoteIsNotConstructed)
}
