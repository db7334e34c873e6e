package quote

import (
	"errors"
	"fmt"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/pricing"
	"parcels/internal/core/domain/model/vehicle"
	"parcels/internal/pkg/errs"
)

var (
	// ErrQuoteIsNotConstructed is returned when a Quote instance was not created through
	// NewQuote or RestoreQuote.
	ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote constructor")
)

// Route is the pickup and drop-off of a delivery with the distance between them.
type Route struct {
	Pickup   kernel.Location
	Dropoff  kernel.Location
	Distance kernel.Distance
}

// Quote is the aggregate root holding a priced delivery offer.
//
// Quote follows these invariants:
//   - Must have a valid unique identifier and a known vehicle type
//   - Pricing and estimate must be for the quoted vehicle type
//   - ExpiresAt is strictly after CreatedAt
//   - Status transitions follow Status.Book and Status.Expire
type Quote struct {
	id          kernel.UUID
	vehicleType vehicle.Type
	route       Route
	parcel      parcel.Parcel
	conditions  pricing.Conditions
	pricing     pricing.Breakdown
	estimate    pricing.TimeEstimate
	status      Status
	createdAt   time.Time
	expiresAt   time.Time

	isConstructed bool
}

// NewQuote creates an Open quote valid for ttl from createdAt.
//
// Example:
//
//	breakdown, _ := calculator.Calculate(vehicle.Car, distance, p, conditions)
//	estimate, _ := estimator.Estimate(vehicle.Car, distance, conditions.IsPeakHour())
//	q, err := NewQuote(kernel.NewUUID(), route, p, conditions, breakdown, estimate, now, 15*time.Minute)
func NewQuote(
	id kernel.UUID,
	route Route,
	p parcel.Parcel,
	conditions pricing.Conditions,
	breakdown pricing.Breakdown,
	estimate pricing.TimeEstimate,
	createdAt time.Time,
	ttl time.Duration,
) (*Quote, error) {
	return RestoreQuote(id, route, p, conditions, breakdown, estimate, Open, createdAt, createdAt.Add(ttl))
}

// RestoreQuote rebuilds a quote from persisted state, status included.
func RestoreQuote(
	id kernel.UUID,
	route Route,
	p parcel.Parcel,
	conditions pricing.Conditions,
	breakdown pricing.Breakdown,
	estimate pricing.TimeEstimate,
	status Status,
	createdAt time.Time,
	expiresAt time.Time,
) (*Quote, error) {
	q := &Quote{
		conditions:    conditions,
		isConstructed: true,
	}

	if err := errors.Join(
		q.setID(id),
		q.setRoute(route),
		q.setParcel(p),
		q.setPricing(breakdown, estimate),
		q.setStatus(status),
		q.setValidity(createdAt, expiresAt),
	); err != nil {
		return nil, err
	}

	return q, nil
}

func (q *Quote) Validate() error {
	if q == nil || !q.isConstructed {
		return ErrQuoteIsNotConstructed
	}
	return nil
}

func (q *Quote) IsEqual(other *Quote) bool {
	return other != nil && q.id.IsEqual(other.id)
}

func (q *Quote) ID() kernel.UUID {
	return q.id
}

func (q *Quote) VehicleType() vehicle.Type {
	return q.vehicleType
}

func (q *Quote) Route() Route {
	return q.route
}

func (q *Quote) Parcel() parcel.Parcel {
	return q.parcel
}

func (q *Quote) Conditions() pricing.Conditions {
	return q.conditions
}

// Pricing returns the price breakdown. Its Surcharges slice is shared; treat it as read-only.
func (q *Quote) Pricing() pricing.Breakdown {
	return q.pricing
}

func (q *Quote) Estimate() pricing.TimeEstimate {
	return q.estimate
}

func (q *Quote) Status() Status {
	return q.status
}

func (q *Quote) CreatedAt() time.Time {
	return q.createdAt
}

func (q *Quote) ExpiresAt() time.Time {
	return q.expiresAt
}

// IsExpiredAt reports whether the deadline has passed at now.
func (q *Quote) IsExpiredAt(now time.Time) bool {
	return now.After(q.expiresAt)
}

// Book accepts the quote. It fails with ErrQuoteNotOpen unless the quote is Open,
// and with ErrQuoteExpired once the deadline has passed.
func (q *Quote) Book(now time.Time) error {
	if q.status == Open && q.IsExpiredAt(now) {
		return errs.NewValueIsInvalidErrorWithCause(
			"quote",
			fmt.Errorf("%w at %s", ErrQuoteExpired, q.expiresAt.Format(time.RFC3339)),
		)
	}

	newStatus, err := q.status.Book()
	if err != nil {
		return err
	}

	q.status = newStatus
	return nil
}

// Expire closes an Open quote whose deadline has passed at now.
func (q *Quote) Expire(now time.Time) error {
	if q.status == Open && !q.IsExpiredAt(now) {
		return errs.NewValueIsInvalidErrorWithCause(
			"quote",
			fmt.Errorf("quote is valid until %s", q.expiresAt.Format(time.RFC3339)),
		)
	}

	newStatus, err := q.status.Expire()
	if err != nil {
		return err
	}

	q.status = newStatus
	return nil
}

func (q *Quote) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.id = id
	return nil
}

func (q *Quote) setRoute(route Route) error {
	if err := errors.Join(
		route.Pickup.Validate(),
		route.Dropoff.Validate(),
		route.Distance.Validate(),
	); err != nil {
		return err
	}
	q.route = route
	return nil
}

func (q *Quote) setParcel(p parcel.Parcel) error {
	if err := p.Validate(); err != nil {
		return err
	}
	q.parcel = p
	return nil
}

func (q *Quote) setPricing(breakdown pricing.Breakdown, estimate pricing.TimeEstimate) error {
	if err := breakdown.VehicleType.Validate(); err != nil {
		return err
	}
	if estimate.VehicleType != breakdown.VehicleType {
		return errs.NewValueIsInvalidErrorWithCause(
			"estimate",
			fmt.Errorf("estimate is for %s, pricing is for %s", estimate.VehicleType, breakdown.VehicleType),
		)
	}
	if breakdown.FinalPrice < pricing.MinPrice || breakdown.FinalPrice > pricing.MaxPrice {
		return errs.NewValueIsOutOfRangeError("final_price", breakdown.FinalPrice, pricing.MinPrice, pricing.MaxPrice)
	}
	q.vehicleType = breakdown.VehicleType
	q.pricing = breakdown
	q.estimate = estimate
	return nil
}

func (q *Quote) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	q.status = status
	return nil
}

func (q *Quote) setValidity(createdAt, expiresAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created_at")
	}
	if !expiresAt.After(createdAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"expires_at",
			fmt.Errorf("%s is not after %s", expiresAt.Format(time.RFC3339), createdAt.Format(time.RFC3339)),
		)
	}
	q.createdAt = createdAt
	q.expiresAt = expiresAt
	return nil
}
