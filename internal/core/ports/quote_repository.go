// Package ports defines the contracts between the application core and its adapters:
// persistence, distance estimation and the wall clock.
package ports

import (
	"context"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/quote"
)

// QuoteRepository defines the persistence contract for quote aggregates.
type QuoteRepository interface {
	// Add persists a new quote aggregate.
	Add(ctx context.Context, aggregate *quote.Quote) error

	// Update persists the status of an existing quote.
	Update(ctx context.Context, aggregate *quote.Quote) error

	// Get retrieves a quote by its identifier.
	// Returns errs.ObjectNotFoundError when no such quote exists.
	Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error)

	// GetAllOpenExpiredBefore retrieves every Open quote whose deadline is before now,
	// oldest deadline first.
	GetAllOpenExpiredBefore(ctx context.Context, now time.Time) ([]*quote.Quote, error)
}
