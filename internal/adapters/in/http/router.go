package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"fastereats/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const BaseURL = "/api/v1"

// swaggerDoc hands the contract to swag so echo-swagger can serve it.
type swaggerDoc string

func (d swaggerDoc) ReadDoc() string { return string(d) }

var registerSwagger sync.Once

// NewRouter builds the echo instance: /health, the OpenAPI document, the
// Swagger UI and the validated API under BaseURL.
func NewRouter(server *Server, doc *openapi3.T, logger *slog.Logger) (*echo.Echo, error) {
	docJSON, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}

	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	registerSwagger.Do(func() {
		swag.Register(swag.Name, swaggerDoc(docJSON))
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, docJSON)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlersWithBaseURL(e, server, BaseURL)

	return e, nil
}
