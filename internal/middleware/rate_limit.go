package middleware

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/deppfellow/flight-itinerary/internal/errs"
	"github.com/deppfellow/flight-itinerary/internal/server"
)

const (
	// RateLimitStatsPrefix namespaces the Redis hashes that count denials.
	RateLimitStatsPrefix = "ratelimit:stats"

	// rateLimitStatsTTL applies to the per-minute buckets only; the total
	// hash never expires.
	rateLimitStatsTTL = 24 * time.Hour

	rateLimitStatsTimeout = 500 * time.Millisecond
)

// RateLimitMiddleware throttles clients by IP with an in-memory token bucket
// and records every denial.
type RateLimitMiddleware struct {
	server *server.Server
	now    func() time.Time
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
		now:    time.Now,
	}
}

// Enabled reports whether rate limiting is switched on in config.
func (r *RateLimitMiddleware) Enabled() bool {
	cfg := r.server.Config.RateLimit
	return cfg != nil && cfg.Enabled && cfg.RequestsPerSecond > 0
}

// Limit returns the Echo rate limiter middleware.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	cfg := r.server.Config.RateLimit

	burst := cfg.Burst
	if burst == 0 {
		burst = int(math.Ceil(cfg.RequestsPerSecond))
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RequestsPerSecond),
		Burst:     burst,
		ExpiresIn: cfg.ExpiresIn,
	})

	retryAfter := strconv.Itoa(int(math.Ceil(1 / cfg.RequestsPerSecond)))

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errs.NewInternalServerError()
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Request().Context(), c.Path(), identifier)

			c.Response().Header().Set(echo.HeaderRetryAfter, retryAfter)

			return errs.NewTooManyRequestsError("Rate limit exceeded, please slow down.").
				WithAction(&errs.Action{
					Type:    errs.ActionTypeRetry,
					Message: "Retry after the given number of seconds",
					Value:   retryAfter,
				})
		},
	})
}

// RecordRateLimitHit reports a denial to New Relic and, when Redis is
// configured, counts it in Redis. Both are best-effort: failures are logged
// and never change the response.
func (r *RateLimitMiddleware) RecordRateLimitHit(ctx context.Context, endpoint, identifier string) {
	if app := r.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}

	logger := r.logger(ctx)

	logger.Warn().
		Str("endpoint", endpoint).
		Str("identifier", identifier).
		Msg("rate limit exceeded")

	if r.server.Redis == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rateLimitStatsTimeout)
	defer cancel()

	bucketKey := fmt.Sprintf("%s:minute:%s", RateLimitStatsPrefix, r.now().UTC().Format("200601021504"))

	pipe := r.server.Redis.Pipeline()
	pipe.HIncrBy(ctx, RateLimitStatsPrefix+":total", "denied", 1)
	pipe.HIncrBy(ctx, bucketKey, "denied", 1)
	pipe.Expire(ctx, bucketKey, rateLimitStatsTTL)
	if endpoint != "" {
		pipe.HIncrBy(ctx, RateLimitStatsPrefix+":route", endpoint+":denied", 1)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to record rate limit statistics")
	}
}

// logger prefers the request-scoped logger stored by the context enhancer.
func (r *RateLimitMiddleware) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return r.server.Logger
}
