package middleware

import (
	"net/http"
	"strconv"
	"sync"

	"fleet-service/internal/auth"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRetryAfter         = "Retry-After"
	msgRateLimitExceeded     = "rate limit exceeded"
)

// RateLimiter implements token bucket rate limiting per identity. It must run
// after the authentication stage so that authenticated callers are keyed by
// subject rather than address.
type RateLimiter struct {
	limiters sync.Map // key -> *rate.Limiter
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(requestsPerSecond int, burst int) *RateLimiter {
	return &RateLimiter{
		rate:  rate.Limit(requestsPerSecond),
		burst: burst,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	if limiter, ok := rl.limiters.Load(key); ok {
		return limiter.(*rate.Limiter)
	}
	limiter, _ := rl.limiters.LoadOrStore(key, rate.NewLimiter(rl.rate, rl.burst))
	return limiter.(*rate.Limiter)
}

func (rl *RateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

func identityKey(c echo.Context) string {
	if principal, ok := auth.PrincipalFromContext(c.Request().Context()); ok {
		return "sub:" + principal.Subject
	}
	return "ip:" + c.RealIP()
}

func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limiter := rl.getLimiter(identityKey(c))
			header := c.Response().Header()
			header.Set(headerRateLimitLimit, strconv.Itoa(rl.burst))

			if !limiter.Allow() {
				header.Set(headerRateLimitRemaining, "0")
				header.Set(headerRetryAfter, "1")
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": msgRateLimitExceeded,
				})
			}

			header.Set(headerRateLimitRemaining, strconv.Itoa(int(limiter.Tokens())))
			return next(c)
		}
	}
}
