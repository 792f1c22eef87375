package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines a token-bucket limit applied per client IP.
type RateLimitConfig struct {
	// Requests allowed per Window.
	Requests int
	Window   time.Duration
	// Burst is the bucket size; defaults to Requests when zero.
	Burst int
}

// LoginLimit is the default profile for credential endpoints: tight enough to
// blunt brute-force attempts without locking out a fumbled password.
var LoginLimit = RateLimitConfig{Requests: 10, Window: time.Minute}

type ipLimiter struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// RateLimit returns a per-IP token-bucket limiter. Stale entries are pruned
// lazily on request, at most once per window, so the map does not grow without
// bound and no background goroutine outlives the middleware.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	burst := cfg.Burst
	if burst <= 0 {
		burst = cfg.Requests
	}
	limit := rate.Every(cfg.Window / time.Duration(cfg.Requests))

	var (
		mu        sync.Mutex
		limiters  = make(map[string]*ipLimiter)
		lastPrune = time.Now()
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			now := time.Now()

			mu.Lock()
			if now.Sub(lastPrune) > cfg.Window {
				for addr, l := range limiters {
					if now.Sub(l.lastSeen) > 3*cfg.Window {
						delete(limiters, addr)
					}
				}
				lastPrune = now
			}

			l, ok := limiters[ip]
			if !ok {
				l = &ipLimiter{lim: rate.NewLimiter(limit, burst)}
				limiters[ip] = l
			}
			l.lastSeen = now
			mu.Unlock()

			if !l.lim.Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
