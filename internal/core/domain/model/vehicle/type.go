package vehicle

import (
	"errors"
	"fmt"

	"parcels/internal/pkg/errs"
)

// ErrInvalidVehicleType is the cause carried when a vehicle type is not in the registry.
var ErrInvalidVehicleType = errors.New("unknown vehicle type")

// Type is the wire code of a vehicle type.
type Type string

const (
	BodaBoda Type = "boda_boda"
	TukTuk   Type = "tuk_tuk"
	Car      Type = "car"
	Van      Type = "van"
	Pickup   Type = "pickup"
)

// Types returns the registry in its fixed enumeration order.
func Types() []Type {
	return []Type{BodaBoda, TukTuk, Car, Van, Pickup}
}

// ParseType validates a wire code.
func ParseType(code string) (Type, error) {
	t := Type(code)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t Type) Validate() error {
	if _, ok := profiles[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicle_type", fmt.Errorf("%w: %q", ErrInvalidVehicleType, string(t)))
	}
	return nil
}

func (t Type) String() string {
	return string(t)
}

// DisplayName is the label shown next to the vehicle code, e.g. "Boda Boda (Motorcycle)".
func (t Type) DisplayName() string {
	if info, ok := catalog[t]; ok {
		return info.DisplayName
	}
	return "Unknown"
}
