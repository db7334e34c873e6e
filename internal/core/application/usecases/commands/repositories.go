// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"parcels/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// QuoteRepoFactory provides access to the quote repository within a transaction.
	QuoteRepoFactory interface {
		QuoteRepository() ports.QuoteRepository
	}

	// QuoteUoW manages transactions for operations on quote aggregates.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.QuoteRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	QuoteUoW interface {
		TxManager
		QuoteRepoFactory
	}

	// QuoteUoWFactory creates new quote unit of work instances.
	QuoteUoWFactory interface {
		Create() QuoteUoW
	}
)
