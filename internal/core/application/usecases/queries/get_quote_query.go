package queries

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/pricing"
	"parcels/internal/pkg/guard"
)

var (
	ErrGetQuoteQueryIsNotConstructed = errors.New(
		"GetQuoteQuery must be created via NewGetQuoteQuery constructor",
	)
)

// GetQuoteQuery reads one stored quote.
type GetQuoteQuery struct { //nolint:recvcheck //using for validation
	quoteID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetQuoteQuery(quoteID kernel.UUID) (GetQuoteQuery, error) {
	query := GetQuoteQuery{guard: guard.NewConstructorGuard()}
	if err := query.setQuoteID(quoteID); err != nil {
		return GetQuoteQuery{}, err
	}
	return query, nil
}

func (q GetQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetQuoteQueryIsNotConstructed)
}

func (q GetQuoteQuery) QuoteID() kernel.UUID {
	return q.quoteID
}

func (q *GetQuoteQuery) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}
	q.quoteID = quoteID
	return nil
}

// GetQuoteQueryResponse is the read model of a stored quote.
type GetQuoteQueryResponse struct {
	ID        kernel.UUID
	Status    string
	Pickup    kernel.Location
	Dropoff   kernel.Location
	Size      string
	Weight    string
	Quantity  int
	IsNight   bool
	IsRaining bool
	Pricing   pricing.Breakdown
	Estimate  pricing.TimeEstimate
	CreatedAt time.Time
	ExpiresAt time.Time
}
