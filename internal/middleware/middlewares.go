package middleware

import (
	"github.com/deppfellow/flight-itinerary/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server so
// the router receives them as one value.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers and the
	// global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer attaches the request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing installs New Relic and adds custom attributes.
	Tracing *TracingMiddleware

	// RateLimit throttles clients and records denials.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components. New Relic middleware
// degrades into a no-op when the application is not configured.
func NewMiddlewares(s *server.Server) *Middlewares {
	nrApp := s.LoggerService.GetApplication()

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
