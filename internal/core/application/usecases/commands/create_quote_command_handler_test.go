package commands_test

import (
	"errors"
	"testing"
	"time"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/quote"
	"parcels/internal/core/domain/model/vehicle"
	"parcels/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 08:00 in Nairobi, a peak hour.
var peakMorning = time.Date(2026, 5, 12, 5, 0, 0, 0, time.UTC)

func newCreateHandler(factory commands.QuoteUoWFactory, distances *MockDistanceEstimator) commands.CreateQuoteCommandHandler {
	return commands.NewCreateQuoteCommandHandler(
		factory,
		distances,
		fixedClock{now: peakMorning},
		services.NewPriceCalculator(),
		services.NewTravelTimeEstimator(),
		10*time.Minute,
	)
}

func TestCreateQuoteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateQuoteCommand(id, vehicle.BodaBoda, nairobiCBD(t), westlands(t), smallParcel(t))
	require.NoError(t, err)

	distance, _ := kernel.NewDistance(5)
	distances := new(MockDistanceEstimator)
	distances.On("EstimateDistance", ctx, cmd.Pickup(), cmd.Dropoff()).Return(distance, nil).Once()

	var saved *quote.Quote
	repo := new(MockQuoteRepository)
	uow := new(MockQuoteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*quote.Quote")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*quote.Quote) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateHandler(factory, distances)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, saved)
	assert.Equal(t, id, saved.ID())
	assert.Equal(t, quote.Open, saved.Status())
	assert.True(t, saved.Conditions().IsPeakHour())
	assert.Equal(t, int64(337), saved.Pricing().FinalPrice)
	assert.Equal(t, 30, saved.Estimate().Minutes)
	assert.Equal(t, peakMorning.Add(10*time.Minute), saved.ExpiresAt())

	distances.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateQuoteCommandHandler_Handle_ValidationError(t *testing.T) {
	h := newCreateHandler(new(MockQuoteUoWFactory), new(MockDistanceEstimator))

	err := h.Handle(t.Context(), commands.CreateQuoteCommand{})

	require.ErrorIs(t, err, commands.ErrCreateQuoteCommandIsNotConstructed)
}

func TestCreateQuoteCommandHandler_Handle_DistanceError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateQuoteCommand(kernel.NewUUID(), vehicle.Car, nairobiCBD(t), nairobiCBD(t), smallParcel(t))

	distances := new(MockDistanceEstimator)
	distances.On("EstimateDistance", ctx, cmd.Pickup(), cmd.Dropoff()).
		Return(kernel.Distance{}, kernel.ErrInvalidDistance).Once()
	factory := new(MockQuoteUoWFactory)

	h := newCreateHandler(factory, distances)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, kernel.ErrInvalidDistance)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateQuoteCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateQuoteCommand(kernel.NewUUID(), vehicle.Car, nairobiCBD(t), westlands(t), smallParcel(t))

	distance, _ := kernel.NewDistance(3)
	distances := new(MockDistanceEstimator)
	distances.On("EstimateDistance", ctx, mock.Anything, mock.Anything).Return(distance, nil).Once()

	uow := new(MockQuoteUoW)
	factory := new(MockQuoteUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := newCreateHandler(factory, distances)
	require.EqualError(t, h.Handle(ctx, cmd), "begin error")
	uow.AssertExpectations(t)
}

func TestCreateQuoteCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateQuoteCommand(kernel.NewUUID(), vehicle.Van, nairobiCBD(t), westlands(t), smallParcel(t))

	distance, _ := kernel.NewDistance(3)
	distances := new(MockDistanceEstimator)
	distances.On("EstimateDistance", ctx, mock.Anything, mock.Anything).Return(distance, nil).Once()

	repo := new(MockQuoteRepository)
	uow := new(MockQuoteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*quote.Quote")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateHandler(factory, distances)
	require.Error(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateQuoteCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateQuoteCommand(kernel.NewUUID(), vehicle.Pickup, nairobiCBD(t), westlands(t), smallParcel(t))

	distance, _ := kernel.NewDistance(3)
	distances := new(MockDistanceEstimator)
	distances.On("EstimateDistance", ctx, mock.Anything, mock.Anything).Return(distance, nil).Once()

	repo := new(MockQuoteRepository)
	uow := new(MockQuoteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*quote.Quote")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateHandler(factory, distances)
	require.EqualError(t, h.Handle(ctx, cmd), "commit error")
	uow.AssertExpectations(t)
}
