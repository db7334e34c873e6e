package commands

import (
	"context"

	"parcels/internal/core/ports"
)

// ExpireQuotesCommandHandler expires stale quotes in a single transaction.
// It is meant to be run periodically by a scheduler.
type ExpireQuotesCommandHandler struct {
	uowFactory QuoteUoWFactory
	clock      ports.Clock
}

func NewExpireQuotesCommandHandler(uowFactory QuoteUoWFactory, clock ports.Clock) ExpireQuotesCommandHandler {
	return ExpireQuotesCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns how many quotes were expired.
func (h *ExpireQuotesCommandHandler) Handle(ctx context.Context, cmd ExpireQuotesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.QuoteRepository()

	quotes, err := repo.GetAllOpenExpiredBefore(ctx, now)
	if err != nil {
		return 0, err
	}

	for _, q := range quotes {
		if err = q.Expire(now); err != nil {
			return 0, err
		}

		if err = repo.Update(ctx, q); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(quotes), nil
}
