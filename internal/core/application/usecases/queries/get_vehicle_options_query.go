package queries

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/pricing"
	"parcels/internal/pkg/guard"
)

var (
	ErrGetVehicleOptionsQueryIsNotConstructed = errors.New(
		"GetVehicleOptionsQuery must be created via NewGetVehicleOptionsQuery constructor",
	)
)

// GetVehicleOptionsQuery prices a parcel with every vehicle type at the current time.
//
// Example:
//
//	d, _ := kernel.NewDistance(8.5)
//	p, _ := parcel.NewParcel(parcel.Medium, parcel.Light, 1)
//	query, _ := NewGetVehicleOptionsQuery(d, p)
//
//	resp, err := handler.Handle(ctx, query)
//	for _, o := range resp.Options {
//	    fmt.Printf("%s: %d %s\n", o.DisplayName, o.Price, o.Pricing.Currency)
//	}
type GetVehicleOptionsQuery struct { //nolint:recvcheck //using for validation
	distance kernel.Distance
	parcel   parcel.Parcel

	guard guard.ConstructorGuard
}

func NewGetVehicleOptionsQuery(distance kernel.Distance, p parcel.Parcel) (GetVehicleOptionsQuery, error) {
	query := GetVehicleOptionsQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		query.setDistance(distance),
		query.setParcel(p),
	); err != nil {
		return GetVehicleOptionsQuery{}, err
	}

	return query, nil
}

func (q GetVehicleOptionsQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleOptionsQueryIsNotConstructed)
}

func (q GetVehicleOptionsQuery) Distance() kernel.Distance {
	return q.distance
}

func (q GetVehicleOptionsQuery) Parcel() parcel.Parcel {
	return q.parcel
}

func (q *GetVehicleOptionsQuery) setDistance(distance kernel.Distance) error {
	if err := distance.Validate(); err != nil {
		return err
	}
	q.distance = distance
	return nil
}

func (q *GetVehicleOptionsQuery) setParcel(p parcel.Parcel) error {
	if err := p.Validate(); err != nil {
		return err
	}
	q.parcel = p
	return nil
}

// GetVehicleOptionsQueryResponse lists every vehicle type in registry order.
type GetVehicleOptionsQueryResponse struct {
	Options    []pricing.VehicleOption
	IsPeakHour bool
	DistanceKm float64
}
