// Package http exposes the pricing use cases over REST.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"parcels/internal/adapters/in/http/servers"
	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/quote"
	"parcels/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type createQuoteHandler interface {
	Handle(ctx context.Context, cmd commands.CreateQuoteCommand) error
}

type bookQuoteHandler interface {
	Handle(ctx context.Context, cmd commands.BookQuoteCommand) error
}

type getQuoteHandler interface {
	Handle(ctx context.Context, query queries.GetQuoteQuery) (queries.GetQuoteQueryResponse, error)
}

type getVehicleOptionsHandler interface {
	Handle(ctx context.Context, query queries.GetVehicleOptionsQuery) (queries.GetVehicleOptionsQueryResponse, error)
}

type getVehicleTypesHandler interface {
	Handle(ctx context.Context, query queries.GetVehicleTypesQuery) ([]queries.GetVehicleTypesQueryResponse, error)
}

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	// Command handlers
	createQuoteHandler createQuoteHandler
	bookQuoteHandler   bookQuoteHandler

	// Query handlers
	getQuoteHandler          getQuoteHandler
	getVehicleOptionsHandler getVehicleOptionsHandler
	getVehicleTypesHandler   getVehicleTypesHandler

	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(
	createQuoteHandler createQuoteHandler,
	bookQuoteHandler bookQuoteHandler,
	getQuoteHandler getQuoteHandler,
	getVehicleOptionsHandler getVehicleOptionsHandler,
	getVehicleTypesHandler getVehicleTypesHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createQuoteHandler:       createQuoteHandler,
		bookQuoteHandler:         bookQuoteHandler,
		getQuoteHandler:          getQuoteHandler,
		getVehicleOptionsHandler: getVehicleOptionsHandler,
		getVehicleTypesHandler:   getVehicleTypesHandler,
		logger:                   logger.With("component", "http_server"),
	}
}

// GetVehicleTypes handles GET /api/v1/vehicles/types.
func (s *Server) GetVehicleTypes(ctx echo.Context) error {
	types, err := s.getVehicleTypesHandler.Handle(ctx.Request().Context(), queries.NewGetVehicleTypesQuery())
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve vehicle types")
	}

	response := make([]servers.VehicleType, len(types))
	for i, t := range types {
		response[i] = toVehicleType(t)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetVehiclePricing handles POST /api/v1/vehicles/pricing.
func (s *Server) GetVehiclePricing(ctx echo.Context) error {
	var req servers.PricingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := toVehicleOptionsQuery(req)
	if err != nil {
		return s.errorResponse(ctx, err, "Invalid pricing request")
	}

	result, err := s.getVehicleOptionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to price vehicle options")
	}

	return ctx.JSON(http.StatusOK, toPricingResponse(result))
}

// errorResponse maps domain errors onto status codes. Unexpected errors are
// logged and reported as 500 with the fallback message only.
func (s *Server) errorResponse(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, quote.ErrQuoteNotOpen), errors.Is(err, quote.ErrQuoteExpired):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return badRequest(ctx, fallback+": "+err.Error())
	}

	s.logger.ErrorContext(ctx.Request().Context(), fallback, "error", err)
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: fallback,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
