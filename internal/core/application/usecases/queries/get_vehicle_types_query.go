package queries

import (
	"errors"

	"parcels/internal/core/domain/model/vehicle"
	"parcels/internal/pkg/guard"
)

var (
	ErrGetVehicleTypesQueryIsNotConstructed = errors.New(
		"GetVehicleTypesQuery must be created via NewGetVehicleTypesQuery constructor",
	)
)

// GetVehicleTypesQuery lists the vehicle catalog for the vehicle picker.
type GetVehicleTypesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetVehicleTypesQuery() GetVehicleTypesQuery {
	return GetVehicleTypesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetVehicleTypesQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleTypesQueryIsNotConstructed)
}

// GetVehicleTypesQueryResponse is one catalog entry with its tariff.
type GetVehicleTypesQueryResponse struct {
	Info         vehicle.Info
	BaseFare     float64
	PerKmRate    float64
	MaxWeightKg  int
	MinutesPerKm float64
}
