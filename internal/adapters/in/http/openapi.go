package http

import (
	"fmt"
	"net/http"

	"parcels/api"
	"parcels/internal/adapters/in/http/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// LoadOpenAPI parses the embedded OpenAPI document.
func LoadOpenAPI() (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI document: %w", err)
	}
	return doc, nil
}

// RequestValidator checks requests against doc before they reach a handler.
// Paths the document does not describe, such as /health, pass through untouched.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build OpenAPI router: %w", err)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    &openapi3filter.Options{MultiError: true},
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return badRequest(ctx, err.Error())
			}

			return next(ctx)
		}
	}, nil
}

// RegisterRoutes mounts the API with request validation, the raw OpenAPI
// document and a Swagger UI reading it.
func RegisterRoutes(e *echo.Echo, server *Server) error {
	doc, err := LoadOpenAPI()
	if err != nil {
		return err
	}

	validator, err := RequestValidator(doc)
	if err != nil {
		return err
	}

	e.GET("/openapi.yaml", func(ctx echo.Context) error {
		return ctx.Blob(http.StatusOK, "application/yaml", api.OpenAPI)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.yaml")))

	e.Use(validator)
	servers.RegisterHandlers(e, server)

	return nil
}
