package commands

import (
	"errors"

	"parcels/internal/pkg/guard"
)

// ExpireQuotesCommand closes every Open quote whose deadline has passed.
//
// Example:
//
//	cmd := NewExpireQuotesCommand()
//	handler := NewExpireQuotesCommandHandler(uowFactory, clock)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("quote expiry failed: %v", err)
//	}
type ExpireQuotesCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrExpireQuotesCommandIsNotConstructed = errors.New(
		"ExpireQuotesCommand must be created via NewExpireQuotesCommand constructor",
	)
)

// NewExpireQuotesCommand creates the parameterless expiry command.
func NewExpireQuotesCommand() ExpireQuotesCommand {
	return ExpireQuotesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c *ExpireQuotesCommand) Validate() error {
	return c.guard.Validate(ErrExpireQuotesCommandIsNotConstructed)
}
