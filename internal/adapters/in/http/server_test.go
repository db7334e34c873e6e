package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"parcels/internal/adapters/in/http/servers"
	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/pricing"
	"parcels/internal/core/domain/model/quote"
	"parcels/internal/core/domain/model/vehicle"
	"parcels/internal/core/domain/services"
	"parcels/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateQuoteHandler struct{ mock.Mock }

func (m *MockCreateQuoteHandler) Handle(ctx context.Context, cmd commands.CreateQuoteCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockBookQuoteHandler struct{ mock.Mock }

func (m *MockBookQuoteHandler) Handle(ctx context.Context, cmd commands.BookQuoteCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetQuoteHandler struct{ mock.Mock }

func (m *MockGetQuoteHandler) Handle(ctx context.Context, query queries.GetQuoteQuery) (queries.GetQuoteQueryResponse, error) {
	args := m.Called(ctx, query)
	if fn, ok := args.Get(0).(func(queries.GetQuoteQuery) queries.GetQuoteQueryResponse); ok {
		return fn(query), args.Error(1)
	}
	return args.Get(0).(queries.GetQuoteQueryResponse), args.Error(1)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// 14:00 in Nairobi, off-peak.
var afternoon = time.Date(2026, 6, 3, 11, 0, 0, 0, time.UTC)

type testServer struct {
	echo        *echo.Echo
	createQuote *MockCreateQuoteHandler
	bookQuote   *MockBookQuoteHandler
	getQuote    *MockGetQuoteHandler
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	ts := testServer{
		echo:        echo.New(),
		createQuote: new(MockCreateQuoteHandler),
		bookQuote:   new(MockBookQuoteHandler),
		getQuote:    new(MockGetQuoteHandler),
	}

	ranker := services.NewVehicleOptionRanker(services.NewPriceCalculator(), services.NewTravelTimeEstimator())
	server := NewServer(
		ts.createQuote,
		ts.bookQuote,
		ts.getQuote,
		queries.NewGetVehicleOptionsQueryHandler(fixedClock{now: afternoon}, ranker),
		queries.NewGetVehicleTypesQueryHandler(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	require.NoError(t, RegisterRoutes(ts.echo, server))

	return ts
}

func (ts testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func storedQuote(t *testing.T, id kernel.UUID) queries.GetQuoteQueryResponse {
	t.Helper()

	pickup, err := kernel.NewLocation(-1.2864, 36.8172)
	require.NoError(t, err)
	dropoff, err := kernel.NewLocation(-1.2676, 36.8108)
	require.NoError(t, err)

	return queries.GetQuoteQueryResponse{
		ID:       id,
		Status:   quote.Open.String(),
		Pickup:   pickup,
		Dropoff:  dropoff,
		Size:     "medium",
		Weight:   "light",
		Quantity: 1,
		Pricing: pricing.Breakdown{
			VehicleType:         vehicle.BodaBoda,
			BaseFare:            100,
			DistanceCost:        55,
			DistanceKm:          2.2,
			SizeMultiplier:      1.2,
			WeightMultiplier:    1,
			QuantityMultiplier:  1,
			Subtotal:            186,
			SurchargeMultiplier: 1,
			FinalPrice:          186,
			Currency:            pricing.Currency,
		},
		Estimate:  pricing.TimeEstimate{VehicleType: vehicle.BodaBoda, Minutes: 15, RangeMin: 10, RangeMax: 25},
		CreatedAt: afternoon,
		ExpiresAt: afternoon.Add(15 * time.Minute),
	}
}

func TestGetVehicleTypes(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/v1/vehicles/types", "")

	require.Equal(t, http.StatusOK, rec.Code)
	types := decode[[]servers.VehicleType](t, rec)
	require.Len(t, types, 5)
	assert.Equal(t, servers.VehicleTypeCodeBodaBoda, types[0].Type)
	assert.Equal(t, servers.VehicleTypeCodePickup, types[4].Type)
	assert.Equal(t, 20, types[0].MaxWeightKg)
	assert.NotEmpty(t, types[0].Features)
}

func TestGetVehiclePricing_DefaultsParcel(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/v1/vehicles/pricing", `{"distance_km": 5}`)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[servers.PricingResponse](t, rec)
	assert.False(t, resp.IsPeakHour)
	assert.InDelta(t, 5.0, resp.DistanceKm, 1e-9)
	require.Len(t, resp.Options, 5)

	boda := resp.Options[0]
	assert.Equal(t, servers.VehicleTypeCodeBodaBoda, boda.VehicleType)
	assert.Equal(t, 270, boda.Price)
	assert.Equal(t, "20-30 mins", boda.EstimatedTime)
	assert.True(t, boda.IsRecommended)
	assert.Nil(t, boda.Reason)
	assert.Equal(t, pricing.Currency, boda.PriceBreakdown.Currency)
}

func TestGetVehiclePricing_ReasonForIneligibleVehicles(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/v1/vehicles/pricing",
		`{"distance_km": 2, "size": "extra_large", "weight": "very_heavy"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[servers.PricingResponse](t, rec)

	boda := resp.Options[0]
	assert.False(t, boda.CanHandle)
	require.NotNil(t, boda.Reason)
	assert.Equal(t, "Package too large for this vehicle", *boda.Reason)

	van := resp.Options[3]
	assert.True(t, van.IsRecommended)
	assert.Equal(t, 1728, van.Price)
}

func TestGetVehiclePricing_InvalidRequests(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"zero distance", `{"distance_km": 0}`},
		{"negative distance", `{"distance_km": -3}`},
		{"distance beyond half the globe", `{"distance_km": 20038.5}`},
		{"astronomical distance", `{"distance_km": 1e300}`},
		{"missing distance", `{"size": "small"}`},
		{"unknown size", `{"distance_km": 4, "size": "huge"}`},
		{"zero quantity", `{"distance_km": 4, "quantity": 0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(http.MethodPost, "/api/v1/vehicles/pricing", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decode[servers.Error](t, rec)
			assert.Equal(t, http.StatusBadRequest, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestCreateQuote_Created(t *testing.T) {
	ts := newTestServer(t)

	var created kernel.UUID
	ts.createQuote.On("Handle", mock.Anything, mock.AnythingOfType("commands.CreateQuoteCommand")).
		Run(func(args mock.Arguments) {
			cmd := args.Get(1).(commands.CreateQuoteCommand)
			created = cmd.QuoteID()
			assert.Equal(t, vehicle.BodaBoda, cmd.VehicleType())
			assert.Equal(t, 1, cmd.Parcel().Quantity())
		}).
		Return(nil).Once()
	ts.getQuote.On("Handle", mock.Anything, mock.AnythingOfType("queries.GetQuoteQuery")).
		Return(func(q queries.GetQuoteQuery) queries.GetQuoteQueryResponse {
			return storedQuote(t, q.QuoteID())
		}, nil).Once()

	rec := ts.do(http.MethodPost, "/api/v1/quotes", `{
		"vehicle_type": "boda_boda",
		"pickup": {"latitude": -1.2864, "longitude": 36.8172},
		"dropoff": {"latitude": -1.2676, "longitude": 36.8108}
	}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode[servers.Quote](t, rec)
	assert.Equal(t, created.String(), body.Id.String())
	assert.Equal(t, servers.QuoteStatusOpen, body.Status)
	assert.Equal(t, 186, body.PriceBreakdown.FinalPrice)
	assert.Equal(t, "10-25 mins", body.EstimatedTime)

	ts.createQuote.AssertExpectations(t)
	ts.getQuote.AssertExpectations(t)
}

func TestCreateQuote_InvalidBody(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/v1/quotes", `{
		"vehicle_type": "bicycle",
		"pickup": {"latitude": -1.2864, "longitude": 36.8172},
		"dropoff": {"latitude": 95, "longitude": 36.8108}
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ts.createQuote.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateQuote_SamePickupAndDropoff(t *testing.T) {
	ts := newTestServer(t)

	ts.createQuote.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewValueIsInvalidErrorWithCause("distance_km", kernel.ErrInvalidDistance)).Once()

	rec := ts.do(http.MethodPost, "/api/v1/quotes", `{
		"vehicle_type": "car",
		"pickup": {"latitude": -1.2864, "longitude": 36.8172},
		"dropoff": {"latitude": -1.2864, "longitude": 36.8172}
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ts.getQuote.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestGetQuote(t *testing.T) {
	ts := newTestServer(t)
	id := kernel.NewUUID()

	ts.getQuote.On("Handle", mock.Anything, mock.AnythingOfType("queries.GetQuoteQuery")).
		Return(storedQuote(t, id), nil).Once()

	rec := ts.do(http.MethodGet, "/api/v1/quotes/"+id.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[servers.Quote](t, rec)
	assert.Equal(t, id.String(), body.Id.String())
	assert.InDelta(t, -1.2864, body.Pickup.Latitude, 1e-9)
	assert.True(t, body.ExpiresAt.Equal(afternoon.Add(15*time.Minute)))
}

func TestGetQuote_NotFound(t *testing.T) {
	ts := newTestServer(t)
	id := kernel.NewUUID()

	ts.getQuote.On("Handle", mock.Anything, mock.Anything).
		Return(queries.GetQuoteQueryResponse{}, errs.NewObjectNotFoundError("quote", id.String())).Once()

	rec := ts.do(http.MethodGet, "/api/v1/quotes/"+id.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetQuote_MalformedID(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/v1/quotes/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookQuote(t *testing.T) {
	expired := errs.NewValueIsInvalidErrorWithCause("quote", quote.ErrQuoteExpired)
	notOpen := errs.NewValueIsInvalidErrorWithCause("status", quote.ErrQuoteNotOpen)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"booked", nil, http.StatusNoContent},
		{"expired", expired, http.StatusConflict},
		{"already booked", notOpen, http.StatusConflict},
		{"not found", errs.NewObjectNotFoundError("quote", "x"), http.StatusNotFound},
		{"database down", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			id := kernel.NewUUID()

			ts.bookQuote.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.BookQuoteCommand) bool {
				return cmd.QuoteID().IsEqual(id)
			})).Return(tt.err).Once()

			rec := ts.do(http.MethodPost, "/api/v1/quotes/"+id.String()+"/book", "")

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusInternalServerError {
				body := decode[servers.Error](t, rec)
				assert.Equal(t, "Failed to book quote", body.Message)
			}
			ts.bookQuote.AssertExpectations(t)
		})
	}
}

func TestOpenAPIDocumentIsServed(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/openapi.yaml", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/vehicles/pricing")
}
