// Package servers holds the HTTP wire types and echo routing for api/openapi.yaml.
// It is maintained by hand; keep it in step with the document when either changes.
package servers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for QuoteStatus.
const (
	QuoteStatusBooked  QuoteStatus = "Booked"
	QuoteStatusExpired QuoteStatus = "Expired"
	QuoteStatusOpen    QuoteStatus = "Open"
)

// Defines values for Size.
const (
	SizeExtraLarge Size = "extra_large"
	SizeLarge      Size = "large"
	SizeMedium     Size = "medium"
	SizeSmall      Size = "small"
)

// Defines values for VehicleTypeCode.
const (
	VehicleTypeCodeBodaBoda VehicleTypeCode = "boda_boda"
	VehicleTypeCodeCar      VehicleTypeCode = "car"
	VehicleTypeCodePickup   VehicleTypeCode = "pickup"
	VehicleTypeCodeTukTuk   VehicleTypeCode = "tuk_tuk"
	VehicleTypeCodeVan      VehicleTypeCode = "van"
)

// Defines values for Weight.
const (
	WeightHeavy     Weight = "heavy"
	WeightLight     Weight = "light"
	WeightMedium    Weight = "medium"
	WeightVeryHeavy Weight = "very_heavy"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Location defines model for Location.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewQuote defines model for NewQuote.
type NewQuote struct {
	Dropoff     Location        `json:"dropoff"`
	Pickup      Location        `json:"pickup"`
	Quantity    *int            `json:"quantity,omitempty"`
	Size        *Size           `json:"size,omitempty"`
	VehicleType VehicleTypeCode `json:"vehicle_type"`
	Weight      *Weight         `json:"weight,omitempty"`
}

// PriceBreakdown defines model for PriceBreakdown.
type PriceBreakdown struct {
	BaseFare            int         `json:"base_fare"`
	Currency            string      `json:"currency"`
	DistanceCost        int         `json:"distance_cost"`
	DistanceKm          float64     `json:"distance_km"`
	FinalPrice          int         `json:"final_price"`
	QuantityMultiplier  float64     `json:"quantity_multiplier"`
	SizeMultiplier      float64     `json:"size_multiplier"`
	Subtotal            int         `json:"subtotal"`
	SurchargeMultiplier float64     `json:"surcharge_multiplier"`
	Surcharges          []Surcharge `json:"surcharges"`
	WeightMultiplier    float64     `json:"weight_multiplier"`
}

// PricingRequest defines model for PricingRequest.
type PricingRequest struct {
	DistanceKm float64 `json:"distance_km"`
	Quantity   *int    `json:"quantity,omitempty"`
	Size       *Size   `json:"size,omitempty"`
	Weight     *Weight `json:"weight,omitempty"`
}

// PricingResponse defines model for PricingResponse.
type PricingResponse struct {
	DistanceKm float64         `json:"distance_km"`
	IsPeakHour bool            `json:"is_peak_hour"`
	Options    []VehicleOption `json:"options"`
}

// Quote defines model for Quote.
type Quote struct {
	CreatedAt        time.Time          `json:"created_at"`
	Dropoff          Location           `json:"dropoff"`
	EstimatedMinutes int                `json:"estimated_minutes"`
	EstimatedTime    string             `json:"estimated_time"`
	ExpiresAt        time.Time          `json:"expires_at"`
	Id               openapi_types.UUID `json:"id"`
	IsNight          bool               `json:"is_night"`
	IsPeakHour       bool               `json:"is_peak_hour"`
	IsRaining        bool               `json:"is_raining"`
	Pickup           Location           `json:"pickup"`
	PriceBreakdown   PriceBreakdown     `json:"price_breakdown"`
	Quantity         int                `json:"quantity"`
	Size             Size               `json:"size"`
	Status           QuoteStatus        `json:"status"`
	VehicleType      VehicleTypeCode    `json:"vehicle_type"`
	Weight           Weight             `json:"weight"`
}

// QuoteStatus defines model for Quote.Status.
type QuoteStatus string

// Size defines model for Size.
type Size string

// Surcharge defines model for Surcharge.
type Surcharge struct {
	Multiplier float64 `json:"multiplier"`
	Name       string  `json:"name"`
}

// VehicleOption defines model for VehicleOption.
type VehicleOption struct {
	BestFor          string          `json:"best_for"`
	CanHandle        bool            `json:"can_handle"`
	Description      string          `json:"description"`
	EstimatedMinutes int             `json:"estimated_minutes"`
	EstimatedTime    string          `json:"estimated_time"`
	Features         []string        `json:"features"`
	Icon             string          `json:"icon"`
	IsRecommended    bool            `json:"is_recommended"`
	MaxWeightKg      int             `json:"max_weight_kg"`
	Price            int             `json:"price"`
	PriceBreakdown   PriceBreakdown  `json:"price_breakdown"`
	Reason           *string         `json:"reason"`
	VehicleName      string          `json:"vehicle_name"`
	VehicleType      VehicleTypeCode `json:"vehicle_type"`
}

// VehicleType defines model for VehicleType.
type VehicleType struct {
	BaseFare     float64         `json:"base_fare"`
	BestFor      string          `json:"best_for"`
	Description  string          `json:"description"`
	Features     []string        `json:"features"`
	Icon         string          `json:"icon"`
	MaxWeight    string          `json:"max_weight"`
	MaxWeightKg  int             `json:"max_weight_kg"`
	MinutesPerKm float64         `json:"minutes_per_km"`
	Name         string          `json:"name"`
	PerKmRate    float64         `json:"per_km_rate"`
	Type         VehicleTypeCode `json:"type"`
}

// VehicleTypeCode defines model for VehicleTypeCode.
type VehicleTypeCode string

// Weight defines model for Weight.
type Weight string

// QuoteId defines model for QuoteId.
type QuoteId = openapi_types.UUID

// CreateQuoteJSONRequestBody defines body for CreateQuote for application/json ContentType.
type CreateQuoteJSONRequestBody = NewQuote

// GetVehiclePricingJSONRequestBody defines body for GetVehiclePricing for application/json ContentType.
type GetVehiclePricingJSONRequestBody = PricingRequest

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Price a delivery for one vehicle and hold the price
	// (POST /api/v1/quotes)
	CreateQuote(ctx echo.Context) error
	// Read a quote
	// (GET /api/v1/quotes/{quoteId})
	GetQuote(ctx echo.Context, quoteId QuoteId) error
	// Book an open quote before it expires
	// (POST /api/v1/quotes/{quoteId}/book)
	BookQuote(ctx echo.Context, quoteId QuoteId) error
	// Price a parcel with every vehicle type
	// (POST /api/v1/vehicles/pricing)
	GetVehiclePricing(ctx echo.Context) error
	// List vehicle types with their tariff
	// (GET /api/v1/vehicles/types)
	GetVehicleTypes(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CreateQuote converts echo context to params.
func (w *ServerInterfaceWrapper) CreateQuote(ctx echo.Context) error {
	return w.Handler.CreateQuote(ctx)
}

// GetQuote converts echo context to params.
func (w *ServerInterfaceWrapper) GetQuote(ctx echo.Context) error {
	var quoteId QuoteId

	err := runtime.BindStyledParameterWithOptions("simple", "quoteId", ctx.Param("quoteId"), &quoteId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter quoteId: %s", err))
	}

	return w.Handler.GetQuote(ctx, quoteId)
}

// BookQuote converts echo context to params.
func (w *ServerInterfaceWrapper) BookQuote(ctx echo.Context) error {
	var quoteId QuoteId

	err := runtime.BindStyledParameterWithOptions("simple", "quoteId", ctx.Param("quoteId"), &quoteId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter quoteId: %s", err))
	}

	return w.Handler.BookQuote(ctx, quoteId)
}

// GetVehiclePricing converts echo context to params.
func (w *ServerInterfaceWrapper) GetVehiclePricing(ctx echo.Context) error {
	return w.Handler.GetVehiclePricing(ctx)
}

// GetVehicleTypes converts echo context to params.
func (w *ServerInterfaceWrapper) GetVehicleTypes(ctx echo.Context) error {
	return w.Handler.GetVehicleTypes(ctx)
}

// EchoRouter is the subset of echo routing methods RegisterHandlers needs;
// both *echo.Echo and *echo.Group satisfy it.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/quotes", wrapper.CreateQuote)
	router.GET(baseURL+"/api/v1/quotes/:quoteId", wrapper.GetQuote)
	router.POST(baseURL+"/api/v1/quotes/:quoteId/book", wrapper.BookQuote)
	router.POST(baseURL+"/api/v1/vehicles/pricing", wrapper.GetVehiclePricing)
	router.GET(baseURL+"/api/v1/vehicles/types", wrapper.GetVehicleTypes)
}
