package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskhive/todo-api/internal/api/metrics"
)

// RequestCounter abstracts the fixed-window counter (Redis in production).
type RequestCounter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimit caps requests per client IP and route within a one-minute window.
// Intended for the unauthenticated credential endpoints. Fails open when the
// counter backend is unreachable.
func RateLimit(counter RequestCounter, limit int, log zerolog.Logger) echo.MiddlewareFunc {
	const window = time.Minute

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP() + ":" + c.Path()

			n, err := counter.Incr(c.Request().Context(), key, window)
			if err != nil {
				log.Warn().Err(err).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if n > int64(limit) {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many attempts, try again later")
			}
			return next(c)
		}
	}
}
