package commands

import (
	"context"
	"time"

	"parcels/internal/core/domain/model/pricing"
	"parcels/internal/core/domain/model/quote"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
)

// CreateQuoteCommandHandler prices a delivery and stores it as an Open quote.
//
// Steps:
//   - estimate the distance between pickup and drop-off
//   - derive peak and night conditions from the clock in Nairobi time
//   - price the delivery and estimate its duration for the requested vehicle
//   - persist the quote with a deadline of now + ttl
//
// The handler does not check that the vehicle can carry the parcel. Vehicle
// eligibility is advisory and shown by the vehicle options query.
type CreateQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
	distances  ports.DistanceEstimator
	clock      ports.Clock
	calculator services.PriceCalculator
	estimator  services.TravelTimeEstimator
	ttl        time.Duration
}

func NewCreateQuoteCommandHandler(
	uowFactory QuoteUoWFactory,
	distances ports.DistanceEstimator,
	clock ports.Clock,
	calculator services.PriceCalculator,
	estimator services.TravelTimeEstimator,
	ttl time.Duration,
) CreateQuoteCommandHandler {
	return CreateQuoteCommandHandler{
		uowFactory: uowFactory,
		distances:  distances,
		clock:      clock,
		calculator: calculator,
		estimator:  estimator,
		ttl:        ttl,
	}
}

// Handle prices and persists the quote inside one transaction.
func (h *CreateQuoteCommandHandler) Handle(ctx context.Context, cmd CreateQuoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	distance, err := h.distances.EstimateDistance(ctx, cmd.Pickup(), cmd.Dropoff())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	conditions := pricing.ConditionsAt(now, false)

	breakdown, err := h.calculator.Calculate(cmd.VehicleType(), distance, cmd.Parcel(), conditions)
	if err != nil {
		return err
	}

	estimate, err := h.estimator.Estimate(cmd.VehicleType(), distance, conditions.IsPeakHour())
	if err != nil {
		return err
	}

	route := quote.Route{Pickup: cmd.Pickup(), Dropoff: cmd.Dropoff(), Distance: distance}
	q, err := quote.NewQuote(cmd.QuoteID(), route, cmd.Parcel(), conditions, breakdown, estimate, now, h.ttl)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.QuoteRepository().Add(ctx, q); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
