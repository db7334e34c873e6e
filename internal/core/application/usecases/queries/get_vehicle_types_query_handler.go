package queries

import (
	"context"

	"parcels/internal/core/domain/model/vehicle"
)

type GetVehicleTypesQueryHandler struct{}

func NewGetVehicleTypesQueryHandler() GetVehicleTypesQueryHandler {
	return GetVehicleTypesQueryHandler{}
}

// Handle returns the catalog in registry order.
func (h GetVehicleTypesQueryHandler) Handle(
	_ context.Context,
	query GetVehicleTypesQuery,
) ([]GetVehicleTypesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	catalog := vehicle.Catalog()
	out := make([]GetVehicleTypesQueryResponse, 0, len(catalog))

	for _, info := range catalog {
		profile, err := vehicle.ProfileOf(info.Type)
		if err != nil {
			return nil, err
		}

		out = append(out, GetVehicleTypesQueryResponse{
			Info:         info,
			BaseFare:     profile.BaseFare,
			PerKmRate:    profile.PerKmRate,
			MaxWeightKg:  profile.Capacity.MaxWeightKg,
			MinutesPerKm: profile.MinutesPerKm,
		})
	}

	return out, nil
}
