package ratelimit

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/dharmasatrya/fareparse/internal/models"
)

// ClientLimiter keeps one token bucket per client key.
type ClientLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults RateLimitConfig
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

func NewClientLimiter(config RateLimitConfig) *ClientLimiter {
	return &ClientLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

func NewClientLimiterWithDefaults() *ClientLimiter {
	return NewClientLimiter(DefaultConfig())
}

func (p *ClientLimiter) GetLimiter(client string) *rate.Limiter {
	p.mu.RLock()
	limiter, exists := p.limiters[client]
	p.mu.RUnlock()

	if exists {
		return limiter
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if limiter, exists = p.limiters[client]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(p.defaults.RequestsPerSecond), p.defaults.BurstSize)
	p.limiters[client] = limiter
	return limiter
}

func (p *ClientLimiter) Allow(client string) bool {
	return p.GetLimiter(client).Allow()
}

// Middleware rejects requests over the client's budget with 429. Clients
// are keyed by echo's RealIP.
func (p *ClientLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !p.Allow(c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error:   "rate_limited",
					Message: "Too many requests",
					Code:    http.StatusTooManyRequests,
				})
			}
			return next(c)
		}
	}
}
