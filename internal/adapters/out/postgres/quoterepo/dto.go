// Package quoterepo persists quote aggregates with GORM.
package quoterepo

import (
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/pricing"
	"parcels/internal/core/domain/model/quote"
	"parcels/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// QuoteDTO is the row layout of the quotes table. Amounts are whole shillings.
type QuoteDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	VehicleType string      `gorm:"size:16;not null"`
	Pickup      LocationDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Dropoff     LocationDTO `gorm:"embedded;embeddedPrefix:dropoff_"`
	DistanceKm  float64     `gorm:"not null"`

	Size     string `gorm:"size:16;not null"`
	Weight   string `gorm:"size:16;not null"`
	Quantity int    `gorm:"not null"`

	IsPeakHour bool
	IsNight    bool
	IsRaining  bool

	BaseFare            int64
	DistanceCost        int64
	SizeMultiplier      float64
	WeightMultiplier    float64
	QuantityMultiplier  float64
	Subtotal            int64
	Surcharges          []SurchargeDTO `gorm:"type:jsonb;serializer:json"`
	SurchargeMultiplier float64
	FinalPrice          int64  `gorm:"not null"`
	Currency            string `gorm:"size:8;not null"`

	EstimatedMinutes  int
	EstimatedRangeMin int
	EstimatedRangeMax int

	Status    int       `gorm:"index:idx_quotes_status_expires_at,priority:1"`
	CreatedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index:idx_quotes_status_expires_at,priority:2"`
}

func (QuoteDTO) TableName() string {
	return "quotes"
}

type LocationDTO struct {
	Latitude  float64
	Longitude float64
}

type SurchargeDTO struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

func fromDomain(q *quote.Quote) QuoteDTO {
	route := q.Route()
	conditions := q.Conditions()
	b := q.Pricing()
	estimate := q.Estimate()

	surcharges := make([]SurchargeDTO, 0, len(b.Surcharges))
	for _, s := range b.Surcharges {
		surcharges = append(surcharges, SurchargeDTO{Name: s.Name, Multiplier: s.Multiplier})
	}

	return QuoteDTO{
		ID:          q.ID().Bytes(),
		VehicleType: q.VehicleType().String(),
		Pickup:      locationDTO(route.Pickup),
		Dropoff:     locationDTO(route.Dropoff),
		DistanceKm:  route.Distance.Km(),

		Size:     q.Parcel().Size().String(),
		Weight:   q.Parcel().Weight().String(),
		Quantity: q.Parcel().Quantity(),

		IsPeakHour: conditions.IsPeakHour(),
		IsNight:    conditions.IsNight(),
		IsRaining:  conditions.IsRaining(),

		BaseFare:            b.BaseFare,
		DistanceCost:        b.DistanceCost,
		SizeMultiplier:      b.SizeMultiplier,
		WeightMultiplier:    b.WeightMultiplier,
		QuantityMultiplier:  b.QuantityMultiplier,
		Subtotal:            b.Subtotal,
		Surcharges:          surcharges,
		SurchargeMultiplier: b.SurchargeMultiplier,
		FinalPrice:          b.FinalPrice,
		Currency:            b.Currency,

		EstimatedMinutes:  estimate.Minutes,
		EstimatedRangeMin: estimate.RangeMin,
		EstimatedRangeMax: estimate.RangeMax,

		Status:    int(q.Status()),
		CreatedAt: q.CreatedAt().UTC(),
		ExpiresAt: q.ExpiresAt().UTC(),
	}
}

func locationDTO(l kernel.Location) LocationDTO {
	return LocationDTO{Latitude: l.Latitude(), Longitude: l.Longitude()}
}

func toDomain(dto QuoteDTO) (*quote.Quote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	route, err := toRoute(dto)
	if err != nil {
		return nil, err
	}

	p, err := toParcel(dto)
	if err != nil {
		return nil, err
	}

	vehicleType, err := vehicle.ParseType(dto.VehicleType)
	if err != nil {
		return nil, err
	}

	conditions := pricing.NewConditions(dto.IsPeakHour, dto.IsNight, dto.IsRaining)

	return quote.RestoreQuote(
		id,
		route,
		p,
		conditions,
		toBreakdown(dto, vehicleType, route.Distance),
		pricing.TimeEstimate{
			VehicleType: vehicleType,
			Minutes:     dto.EstimatedMinutes,
			RangeMin:    dto.EstimatedRangeMin,
			RangeMax:    dto.EstimatedRangeMax,
			IsPeakHour:  dto.IsPeakHour,
		},
		quote.Status(dto.Status),
		dto.CreatedAt,
		dto.ExpiresAt,
	)
}

func toRoute(dto QuoteDTO) (quote.Route, error) {
	pickup, err := kernel.NewLocation(dto.Pickup.Latitude, dto.Pickup.Longitude)
	if err != nil {
		return quote.Route{}, err
	}

	dropoff, err := kernel.NewLocation(dto.Dropoff.Latitude, dto.Dropoff.Longitude)
	if err != nil {
		return quote.Route{}, err
	}

	distance, err := kernel.NewDistance(dto.DistanceKm)
	if err != nil {
		return quote.Route{}, err
	}

	return quote.Route{Pickup: pickup, Dropoff: dropoff, Distance: distance}, nil
}

func toParcel(dto QuoteDTO) (parcel.Parcel, error) {
	size, err := parcel.ParseSizeTier(dto.Size)
	if err != nil {
		return parcel.Parcel{}, err
	}

	weight, err := parcel.ParseWeightTier(dto.Weight)
	if err != nil {
		return parcel.Parcel{}, err
	}

	return parcel.NewParcel(size, weight, dto.Quantity)
}

func toBreakdown(dto QuoteDTO, vehicleType vehicle.Type, distance kernel.Distance) pricing.Breakdown {
	var surcharges []pricing.Surcharge
	for _, s := range dto.Surcharges {
		surcharges = append(surcharges, pricing.Surcharge{Name: s.Name, Multiplier: s.Multiplier})
	}

	return pricing.Breakdown{
		VehicleType:         vehicleType,
		BaseFare:            dto.BaseFare,
		DistanceCost:        dto.DistanceCost,
		DistanceKm:          distance.RoundedKm(),
		SizeMultiplier:      dto.SizeMultiplier,
		WeightMultiplier:    dto.WeightMultiplier,
		QuantityMultiplier:  dto.QuantityMultiplier,
		Subtotal:            dto.Subtotal,
		Surcharges:          surcharges,
		SurchargeMultiplier: dto.SurchargeMultiplier,
		FinalPrice:          dto.FinalPrice,
		Currency:            dto.Currency,
	}
}
