package middleware

import (
	"net/http"
	"time"

	"postboard/config"
	"postboard/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const loginLimiterIdleExpiry = 10 * time.Minute

// NewLoginRateLimiter limits credential exchanges per client IP.
func NewLoginRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.Auth.LoginRateLimit),
		Burst:     cfg.Auth.LoginBurst,
		ExpiresIn: loginLimiterIdleExpiry,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.Error(c, http.StatusForbidden, "RATE_LIMIT_IDENTIFIER", "could not identify client", nil)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return response.Error(c, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "too many login attempts, slow down", nil)
		},
	})
}
