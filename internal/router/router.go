// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/tradepost/backend/internal/handler"
	"github.com/tradepost/backend/internal/middleware"
)

// New builds the Echo instance: error funnel, global middleware chain
// and all route groups.
//
// Middleware order matters. The request id and New Relic transaction
// must exist before the context enhancer builds the request-scoped
// logger, and the tracing decorator reads the transaction the New
// Relic middleware opened.
func New(middlewares *middleware.Middlewares, handlers *handler.Handlers) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.HidePort = true

	// All errors, from handlers or middleware, funnel through here.
	e.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middlewares.Tracing.NewRelicMiddleware())
	e.Use(middlewares.ContextEnhancer.EnhanceContext())
	e.Use(middlewares.Tracing.EnhanceTracing())
	e.Use(middlewares.Global.CORS())
	e.Use(middlewares.Global.RequestLogger())
	e.Use(middlewares.Global.Recover())
	e.Use(middlewares.Global.Secure())

	registerSystemRoutes(e, handlers)
	registerV1Routes(e, middlewares, handlers)

	return e
}
