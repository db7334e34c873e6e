package kernel

import (
	"errors"
	"fmt"
	"math"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

const (
	// MinLatitude is the southern bound of a valid latitude.
	MinLatitude = -90.0
	// MaxLatitude is the northern bound of a valid latitude.
	MaxLatitude = 90.0
	// MinLongitude is the western bound of a valid longitude.
	MinLongitude = -180.0
	// MaxLongitude is the eastern bound of a valid longitude.
	MaxLongitude = 180.0

	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0
)

// ErrLocationIsNotConstructed is returned when validating a zero-value Location.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is an immutable pickup or drop-off point in decimal degrees.
//
// Example:
//
//	cbd, err := kernel.NewLocation(-1.2864, 36.8172)
//	if err != nil {
//	    // latitude or longitude out of range
//	}
//	fmt.Println(cbd) // Location(-1.286400,36.817200)
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation validates both coordinates and reports every violation at once.
func NewLocation(latitude, longitude float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate returns ErrLocationIsNotConstructed for the zero value.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l Location) Latitude() float64 {
	return l.latitude
}

func (l Location) Longitude() float64 {
	return l.longitude
}

func (l Location) String() string {
	return fmt.Sprintf("Location(%f,%f)", l.latitude, l.longitude)
}

// IsEqual compares coordinates; both locations must be constructed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.latitude == other.latitude && l.longitude == other.longitude, nil
}

// GreatCircleKm returns the haversine distance to other in kilometres.
// The result is symmetric and zero for identical points.
//
// Example:
//
//	cbd, _ := kernel.NewLocation(-1.2864, 36.8172)
//	westlands, _ := kernel.NewLocation(-1.2676, 36.8108)
//	km, _ := cbd.GreatCircleKm(westlands) // ~2.2
func (l Location) GreatCircleKm(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := toRadians(l.latitude)
	lat2 := toRadians(other.latitude)
	dLat := lat2 - lat1
	dLng := toRadians(other.longitude - l.longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

// setLatitude and setLongitude use pointer receivers so construction can validate
// in place while every other method stays on the value receiver.
func (l *Location) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	l.longitude = longitude
	return nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
