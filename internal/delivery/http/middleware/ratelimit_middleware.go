package middleware

import (
	"sync"
	"time"

	"prepai/config"
	domainerrors "prepai/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	limiterSweepInterval = 5 * time.Minute
	limiterIdleTTL       = time.Hour
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware is a token bucket per client IP.
type RateLimitMiddleware struct {
	enabled bool
	limit   rate.Limit
	burst   int

	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimitMiddleware builds the limiter from config. A nil or disabled section lets every request through.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		limiters: make(map[string]*limiterEntry),
		now:      time.Now,
	}

	if rl := cfg.RateLimit; rl != nil && rl.Enabled && rl.RPS > 0 {
		m.enabled = true
		m.limit = rate.Limit(rl.RPS)
		m.burst = max(rl.Burst, 1)
	}

	return m
}

// Limit is applied per route.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		if !m.allow(c.RealIP()) {
			return domainerrors.ErrTooManyRequests
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) allow(ip string) bool {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if now.Sub(m.lastSweep) > limiterSweepInterval {
		for key, entry := range m.limiters {
			if now.Sub(entry.lastSeen) > limiterIdleTTL {
				delete(m.limiters, key)
			}
		}
		m.lastSweep = now
	}

	entry, ok := m.limiters[ip]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.limiters[ip] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}
