// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/flight-itinerary/internal/handler"
	"github.com/deppfellow/flight-itinerary/internal/middleware"
	"github.com/deppfellow/flight-itinerary/internal/server"
)

// NewRouter builds the Echo instance with the global middleware chain, the
// global error handler and every route.
//
// Middleware order matters: the request ID must exist before the context
// logger is built, the New Relic transaction must exist before tracing
// attributes and trace ids are added, the rate limiter runs once the request
// logger exists, and Recover sits innermost so a panic still passes through
// request logging.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
	)

	// Denials carry the request ID and are logged like any other request.
	if middlewares.RateLimit.Enabled() {
		router.Use(middlewares.RateLimit.Limit())
	}

	router.Use(middlewares.Global.Recover())

	registerSystemRoutes(router, h)
	registerItineraryRoutes(router, h)

	return router
}
