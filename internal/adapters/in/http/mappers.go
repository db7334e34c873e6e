package http

import (
	"errors"

	"parcels/internal/adapters/in/http/servers"
	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/pricing"
	"parcels/internal/core/domain/model/vehicle"
)

// Parcel defaults applied when a request leaves the field out.
const (
	defaultSize     = servers.SizeMedium
	defaultWeight   = servers.WeightLight
	defaultQuantity = 1
)

func toParcel(size *servers.Size, weight *servers.Weight, quantity *int) (parcel.Parcel, error) {
	sizeCode, weightCode, qty := defaultSize, defaultWeight, defaultQuantity
	if size != nil {
		sizeCode = *size
	}
	if weight != nil {
		weightCode = *weight
	}
	if quantity != nil {
		qty = *quantity
	}

	s, sizeErr := parcel.ParseSizeTier(string(sizeCode))
	w, weightErr := parcel.ParseWeightTier(string(weightCode))
	if err := errors.Join(sizeErr, weightErr); err != nil {
		return parcel.Parcel{}, err
	}

	return parcel.NewParcel(s, w, qty)
}

func toVehicleOptionsQuery(req servers.PricingRequest) (queries.GetVehicleOptionsQuery, error) {
	distance, distanceErr := kernel.NewDistance(req.DistanceKm)
	p, parcelErr := toParcel(req.Size, req.Weight, req.Quantity)
	if err := errors.Join(distanceErr, parcelErr); err != nil {
		return queries.GetVehicleOptionsQuery{}, err
	}

	return queries.NewGetVehicleOptionsQuery(distance, p)
}

func toCreateQuoteCommand(quoteID kernel.UUID, req servers.NewQuote) (commands.CreateQuoteCommand, error) {
	vehicleType, vehicleErr := vehicle.ParseType(string(req.VehicleType))
	pickup, pickupErr := kernel.NewLocation(req.Pickup.Latitude, req.Pickup.Longitude)
	dropoff, dropoffErr := kernel.NewLocation(req.Dropoff.Latitude, req.Dropoff.Longitude)
	p, parcelErr := toParcel(req.Size, req.Weight, req.Quantity)
	if err := errors.Join(vehicleErr, pickupErr, dropoffErr, parcelErr); err != nil {
		return commands.CreateQuoteCommand{}, err
	}

	return commands.NewCreateQuoteCommand(quoteID, vehicleType, pickup, dropoff, p)
}

func toVehicleType(t queries.GetVehicleTypesQueryResponse) servers.VehicleType {
	return servers.VehicleType{
		Type:         servers.VehicleTypeCode(t.Info.Type),
		Name:         t.Info.Name,
		Icon:         t.Info.Icon,
		Description:  t.Info.Description,
		Features:     t.Info.Features,
		MaxWeight:    t.Info.MaxWeight,
		BestFor:      t.Info.BestFor,
		BaseFare:     t.BaseFare,
		PerKmRate:    t.PerKmRate,
		MaxWeightKg:  t.MaxWeightKg,
		MinutesPerKm: t.MinutesPerKm,
	}
}

func toPricingResponse(result queries.GetVehicleOptionsQueryResponse) servers.PricingResponse {
	options := make([]servers.VehicleOption, len(result.Options))
	for i, o := range result.Options {
		options[i] = toVehicleOption(o)
	}

	return servers.PricingResponse{
		Options:    options,
		IsPeakHour: result.IsPeakHour,
		DistanceKm: result.DistanceKm,
	}
}

func toVehicleOption(o pricing.VehicleOption) servers.VehicleOption {
	info, _ := vehicle.InfoOf(o.VehicleType)

	var reason *string
	if !o.CanHandle {
		r := o.Reason
		reason = &r
	}

	return servers.VehicleOption{
		VehicleType:      servers.VehicleTypeCode(o.VehicleType),
		VehicleName:      o.DisplayName,
		CanHandle:        o.CanHandle,
		Reason:           reason,
		Price:            int(o.Price),
		PriceBreakdown:   toPriceBreakdown(o.Pricing),
		EstimatedTime:    o.EstimatedTime.Range(),
		EstimatedMinutes: o.EstimatedTime.Minutes,
		MaxWeightKg:      o.MaxWeightKg,
		IsRecommended:    o.IsRecommended,
		Icon:             info.Icon,
		Description:      info.Description,
		Features:         info.Features,
		BestFor:          info.BestFor,
	}
}

func toPriceBreakdown(b pricing.Breakdown) servers.PriceBreakdown {
	surcharges := make([]servers.Surcharge, len(b.Surcharges))
	for i, s := range b.Surcharges {
		surcharges[i] = servers.Surcharge{Name: s.Name, Multiplier: s.Multiplier}
	}

	return servers.PriceBreakdown{
		BaseFare:            int(b.BaseFare),
		DistanceCost:        int(b.DistanceCost),
		DistanceKm:          b.DistanceKm,
		SizeMultiplier:      b.SizeMultiplier,
		WeightMultiplier:    b.WeightMultiplier,
		QuantityMultiplier:  b.QuantityMultiplier,
		Subtotal:            int(b.Subtotal),
		Surcharges:          surcharges,
		SurchargeMultiplier: b.SurchargeMultiplier,
		FinalPrice:          int(b.FinalPrice),
		Currency:            b.Currency,
	}
}

func toLocation(l kernel.Location) servers.Location {
	return servers.Location{
		Latitude:  l.Latitude(),
		Longitude: l.Longitude(),
	}
}

func toQuote(q queries.GetQuoteQueryResponse) servers.Quote {
	return servers.Quote{
		Id:               q.ID.Bytes(),
		Status:           servers.QuoteStatus(q.Status),
		VehicleType:      servers.VehicleTypeCode(q.Pricing.VehicleType),
		Pickup:           toLocation(q.Pickup),
		Dropoff:          toLocation(q.Dropoff),
		Size:             servers.Size(q.Size),
		Weight:           servers.Weight(q.Weight),
		Quantity:         q.Quantity,
		IsPeakHour:       q.Estimate.IsPeakHour,
		IsNight:          q.IsNight,
		IsRaining:        q.IsRaining,
		PriceBreakdown:   toPriceBreakdown(q.Pricing),
		EstimatedTime:    q.Estimate.Range(),
		EstimatedMinutes: q.Estimate.Minutes,
		CreatedAt:        q.CreatedAt,
		ExpiresAt:        q.ExpiresAt,
	}
}
