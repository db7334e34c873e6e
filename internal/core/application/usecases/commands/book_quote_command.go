package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrBookQuoteCommandIsNotConstructed = errors.New(
	"BookQuoteCommand must be created via NewBookQuoteCommand constructor",
)

// BookQuoteCommand accepts an Open quote on behalf of the customer.
type BookQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID kernel.UUID

	guard guard.ConstructorGuard
}

func NewBookQuoteCommand(quoteID kernel.UUID) (BookQuoteCommand, error) {
	cmd := BookQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setQuoteID(quoteID); err != nil {
		return BookQuoteCommand{}, err
	}

	return cmd, nil
}

func (c BookQuoteCommand) Validate() error {
	return c.guard.Validate(ErrBookQuoteCommandIsNotConstructed)
}

func (c BookQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

func (c *BookQuoteCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}

	c.quoteID = quoteID
	return nil
}
