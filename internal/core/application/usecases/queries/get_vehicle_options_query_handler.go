package queries

import (
	"context"

	"parcels/internal/core/domain/model/pricing"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
)

// GetVehicleOptionsQueryHandler ranks vehicle options under the conditions of the
// current Nairobi hour. No weather source is wired, so rain is never assumed.
type GetVehicleOptionsQueryHandler struct {
	clock  ports.Clock
	ranker services.VehicleOptionRanker
}

func NewGetVehicleOptionsQueryHandler(clock ports.Clock, ranker services.VehicleOptionRanker) GetVehicleOptionsQueryHandler {
	return GetVehicleOptionsQueryHandler{clock: clock, ranker: ranker}
}

func (h GetVehicleOptionsQueryHandler) Handle(
	_ context.Context,
	query GetVehicleOptionsQuery,
) (GetVehicleOptionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetVehicleOptionsQueryResponse{}, err
	}

	conditions := pricing.ConditionsAt(h.clock.Now(), false)

	options, err := h.ranker.Rank(query.Distance(), query.Parcel(), conditions)
	if err != nil {
		return GetVehicleOptionsQueryResponse{}, err
	}

	return GetVehicleOptionsQueryResponse{
		Options:    options,
		IsPeakHour: conditions.IsPeakHour(),
		DistanceKm: query.Distance().RoundedKm(),
	}, nil
}
