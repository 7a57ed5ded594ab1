package http

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apperrors "github.com/allisson/idsmith/internal/errors"
	"github.com/allisson/idsmith/internal/httputil"
)

const (
	// limiterIdleTTL is how long an idle client keeps its limiter.
	limiterIdleTTL = time.Hour
	// sweepInterval is the minimum time between two sweeps of idle limiters.
	sweepInterval = 5 * time.Minute
)

// rateLimiterStore holds per-client-IP limiters. Idle limiters are swept on access, so
// the store owns no goroutine.
type rateLimiterStore struct {
	limiters sync.Map // client IP -> *rateLimiterEntry
	rps      float64
	burst    int
	now      func() time.Time

	sweepMu   sync.Mutex
	lastSweep time.Time
}

type rateLimiterEntry struct {
	limiter    *rate.Limiter
	mu         sync.Mutex
	lastAccess time.Time
}

func newRateLimiterStore(rps float64, burst int) *rateLimiterStore {
	return &rateLimiterStore{rps: rps, burst: burst, now: time.Now, lastSweep: time.Now()}
}

// RateLimitMiddleware enforces a token bucket per client IP (c.ClientIP, which honours
// X-Forwarded-For and X-Real-IP). Rejected requests get a 429 with a Retry-After header.
func RateLimitMiddleware(rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	return newRateLimiterStore(rps, burst).middleware(logger)
}

func (s *rateLimiterStore) middleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		limiter := s.getLimiter(clientIP)

		if !limiter.Allow() {
			reservation := limiter.Reserve()
			retryAfter := int(math.Ceil(reservation.Delay().Seconds()))
			reservation.Cancel()
			if retryAfter < 1 {
				retryAfter = 1
			}

			logger.Debug("rate limit exceeded",
				slog.String("client_ip", clientIP),
				slog.Int("retry_after", retryAfter))

			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			httputil.HandleErrorGin(c, apperrors.ErrTooManyRequests, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// getLimiter returns the limiter of ip, creating it on first use.
func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	now := s.now()
	s.maybeSweep(now)

	if val, ok := s.limiters.Load(ip); ok {
		entry := val.(*rateLimiterEntry)
		entry.mu.Lock()
		entry.lastAccess = now
		entry.mu.Unlock()
		return entry.limiter
	}

	entry := &rateLimiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(s.rps), s.burst),
		lastAccess: now,
	}
	actual, _ := s.limiters.LoadOrStore(ip, entry)
	return actual.(*rateLimiterEntry).limiter
}

// maybeSweep drops limiters idle for longer than limiterIdleTTL, at most once per
// sweepInterval.
func (s *rateLimiterStore) maybeSweep(now time.Time) {
	if !s.sweepMu.TryLock() {
		return
	}
	defer s.sweepMu.Unlock()

	if now.Sub(s.lastSweep) < sweepInterval {
		return
	}
	s.lastSweep = now

	threshold := now.Add(-limiterIdleTTL)
	s.limiters.Range(func(key, value any) bool {
		entry := value.(*rateLimiterEntry)
		entry.mu.Lock()
		stale := entry.lastAccess.Before(threshold)
		entry.mu.Unlock()

		if stale {
			s.limiters.Delete(key)
		}
		return true
	})
}

// size counts the tracked clients.
func (s *rateLimiterStore) size() int {
	n := 0
	s.limiters.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
