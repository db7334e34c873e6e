package commands

import (
	"context"

	"parcels/internal/core/ports"
)

// BookQuoteCommandHandler transitions a quote from Open to Booked.
//
// Errors:
//   - errs.ObjectNotFoundError when the quote does not exist
//   - quote.ErrQuoteNotOpen when it is already booked or expired
//   - quote.ErrQuoteExpired when its deadline has passed
type BookQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
	clock      ports.Clock
}

func NewBookQuoteCommandHandler(uowFactory QuoteUoWFactory, clock ports.Clock) BookQuoteCommandHandler {
	return BookQuoteCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *BookQuoteCommandHandler) Handle(ctx context.Context, cmd BookQuoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.QuoteRepository()

	q, err := repo.Get(ctx, cmd.QuoteID())
	if err != nil {
		return err
	}

	if err = q.Book(h.clock.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, q); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
