package http

import (
	"net/http"

	"parcels/internal/adapters/in/http/servers"
	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateQuote handles POST /api/v1/quotes and answers with the stored quote.
func (s *Server) CreateQuote(ctx echo.Context) error {
	var req servers.NewQuote
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	quoteID := kernel.NewUUID()
	cmd, err := toCreateQuoteCommand(quoteID, req)
	if err != nil {
		return s.errorResponse(ctx, err, "Invalid quote data")
	}

	if err := s.createQuoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err, "Failed to create quote")
	}

	return s.writeQuote(ctx, quoteID, http.StatusCreated)
}

// GetQuote handles GET /api/v1/quotes/{quoteId}.
func (s *Server) GetQuote(ctx echo.Context, quoteId servers.QuoteId) error { //nolint:revive // name fixed by servers.ServerInterface
	id, err := kernel.UUIDFromBytes(quoteId[:])
	if err != nil {
		return badRequest(ctx, "Invalid quote id")
	}

	return s.writeQuote(ctx, id, http.StatusOK)
}

// BookQuote handles POST /api/v1/quotes/{quoteId}/book.
func (s *Server) BookQuote(ctx echo.Context, quoteId servers.QuoteId) error { //nolint:revive // name fixed by servers.ServerInterface
	id, err := kernel.UUIDFromBytes(quoteId[:])
	if err != nil {
		return badRequest(ctx, "Invalid quote id")
	}

	cmd, err := commands.NewBookQuoteCommand(id)
	if err != nil {
		return s.errorResponse(ctx, err, "Invalid quote id")
	}

	if err := s.bookQuoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err, "Failed to book quote")
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) writeQuote(ctx echo.Context, id kernel.UUID, status int) error {
	query, err := queries.NewGetQuoteQuery(id)
	if err != nil {
		return s.errorResponse(ctx, err, "Invalid quote id")
	}

	q, err := s.getQuoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve quote")
	}

	return ctx.JSON(status, toQuote(q))
}
