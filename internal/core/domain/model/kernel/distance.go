package kernel

import (
	"errors"
	"fmt"
	"math"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

// MaxDistanceKm is half of Earth's circumference, the longest great-circle trip.
const MaxDistanceKm = 20038.0

var (
	// ErrInvalidDistance is the cause carried by every rejected distance.
	ErrInvalidDistance = errors.New("distance must be greater than 0 km and at most 20038 km")

	// ErrDistanceIsNotConstructed is returned when validating a zero-value Distance.
	ErrDistanceIsNotConstructed = errs.NewValueIsRequiredErrorWithCause(
		"distance must be created via NewDistance constructor", ErrInvalidDistance)
)

// Distance is a strictly positive, finite length in kilometres.
type Distance struct { //nolint:recvcheck //using for validation
	km    float64
	guard guard.ConstructorGuard
}

// NewDistance rejects zero, negative, NaN and infinite values, and anything above
// MaxDistanceKm, with ErrInvalidDistance.
func NewDistance(km float64) (Distance, error) {
	d := Distance{guard: guard.NewConstructorGuard()}
	if err := d.setKm(km); err != nil {
		return Distance{}, err
	}
	return d, nil
}

func (d Distance) Validate() error {
	return d.guard.Validate(ErrDistanceIsNotConstructed)
}

// Km returns the exact distance used in pricing arithmetic.
func (d Distance) Km() float64 {
	return d.km
}

// RoundedKm returns the distance to one decimal place, as shown to customers.
func (d Distance) RoundedKm() float64 {
	return math.Round(d.km*10) / 10
}

func (d Distance) String() string {
	return fmt.Sprintf("%.1f km", d.RoundedKm())
}

func (d *Distance) setKm(km float64) error {
	if math.IsNaN(km) || km <= 0 || km > MaxDistanceKm {
		return errs.NewValueIsInvalidErrorWithCause("distance_km", fmt.Errorf("%w: got %v", ErrInvalidDistance, km))
	}

	d.km = km
	return nil
}
