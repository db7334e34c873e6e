package queries

import (
	"context"
	"encoding/json"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/pricing"
	"parcels/internal/core/domain/model/quote"
	"parcels/internal/core/domain/model/vehicle"
	"parcels/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetQuoteQueryHandler reads a quote straight from the quotes table.
type GetQuoteQueryHandler struct {
	db *gorm.DB
}

func NewGetQuoteQueryHandler(db *gorm.DB) GetQuoteQueryHandler {
	return GetQuoteQueryHandler{db: db}
}

type surchargeRow struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

// Handle returns errs.ObjectNotFoundError when the quote does not exist.
func (h GetQuoteQueryHandler) Handle(ctx context.Context, query GetQuoteQuery) (GetQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQuoteQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, vehicle_type, status,
			pickup_latitude, pickup_longitude, dropoff_latitude, dropoff_longitude,
			distance_km, size, weight, quantity,
			is_peak_hour, is_night, is_raining,
			base_fare, distance_cost, size_multiplier, weight_multiplier, quantity_multiplier,
			subtotal, surcharges, surcharge_multiplier, final_price, currency,
			estimated_minutes, estimated_range_min, estimated_range_max,
			created_at, expires_at
		FROM quotes
		WHERE id = ?
	`, query.QuoteID().Bytes()).Rows()
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetQuoteQueryResponse{}, err
		}
		return GetQuoteQueryResponse{}, errs.NewObjectNotFoundError("quote", query.QuoteID().String())
	}

	var (
		resp                   GetQuoteQueryResponse
		id                     uuid.UUID
		vehicleType            string
		status                 int
		pickupLat, pickupLng   float64
		dropoffLat, dropoffLng float64
		distanceKm             float64
		isPeakHour             bool
		surcharges             []byte
		b                      pricing.Breakdown
		estimate               pricing.TimeEstimate
	)

	err = rows.Scan(
		&id, &vehicleType, &status,
		&pickupLat, &pickupLng, &dropoffLat, &dropoffLng,
		&distanceKm, &resp.Size, &resp.Weight, &resp.Quantity,
		&isPeakHour, &resp.IsNight, &resp.IsRaining,
		&b.BaseFare, &b.DistanceCost, &b.SizeMultiplier, &b.WeightMultiplier, &b.QuantityMultiplier,
		&b.Subtotal, &surcharges, &b.SurchargeMultiplier, &b.FinalPrice, &b.Currency,
		&estimate.Minutes, &estimate.RangeMin, &estimate.RangeMax,
		&resp.CreatedAt, &resp.ExpiresAt,
	)
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetQuoteQueryResponse{}, err
	}
	if resp.Pickup, err = kernel.NewLocation(pickupLat, pickupLng); err != nil {
		return GetQuoteQueryResponse{}, err
	}
	if resp.Dropoff, err = kernel.NewLocation(dropoffLat, dropoffLng); err != nil {
		return GetQuoteQueryResponse{}, err
	}
	distance, err := kernel.NewDistance(distanceKm)
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}
	vt, err := vehicle.ParseType(vehicleType)
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	var parsed []surchargeRow
	if len(surcharges) > 0 {
		if err = json.Unmarshal(surcharges, &parsed); err != nil {
			return GetQuoteQueryResponse{}, err
		}
	}
	for _, s := range parsed {
		b.Surcharges = append(b.Surcharges, pricing.Surcharge{Name: s.Name, Multiplier: s.Multiplier})
	}

	b.VehicleType = vt
	b.DistanceKm = distance.RoundedKm()
	estimate.VehicleType = vt
	estimate.IsPeakHour = isPeakHour

	resp.Status = quote.Status(status).String()
	resp.Pricing = b
	resp.Estimate = estimate

	return resp, rows.Err()
}
