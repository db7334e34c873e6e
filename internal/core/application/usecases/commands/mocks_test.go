package commands_test

import (
	"context"
	"time"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/quote"
	"parcels/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockQuoteRepository struct{ mock.Mock }

func (m *MockQuoteRepository) Add(ctx context.Context, q *quote.Quote) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuoteRepository) Update(ctx context.Context, q *quote.Quote) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuoteRepository) Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quote.Quote), args.Error(1)
}

func (m *MockQuoteRepository) GetAllOpenExpiredBefore(ctx context.Context, now time.Time) ([]*quote.Quote, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*quote.Quote), args.Error(1)
}

type MockQuoteUoW struct{ mock.Mock }

func (m *MockQuoteUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockQuoteUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockQuoteUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockQuoteUoW) QuoteRepository() ports.QuoteRepository {
	args := m.Called()
	return args.Get(0).(ports.QuoteRepository)
}

type MockQuoteUoWFactory struct{ mock.Mock }

func (m *MockQuoteUoWFactory) Create() commands.QuoteUoW {
	args := m.Called()
	return args.Get(0).(commands.QuoteUoW)
}

type MockDistanceEstimator struct{ mock.Mock }

func (m *MockDistanceEstimator) EstimateDistance(ctx context.Context, from, to kernel.Location) (kernel.Distance, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(kernel.Distance), args.Error(1)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }
