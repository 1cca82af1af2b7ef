package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const (
	// limiterIdleTTL is how long an unused limiter is kept before it expires.
	limiterIdleTTL = time.Hour
	// limiterCleanupInterval is how often expired limiters are purged.
	limiterCleanupInterval = 5 * time.Minute
)

// limiterStore holds one token bucket per key. Entries expire after limiterIdleTTL
// without access.
type limiterStore struct {
	limiters *cache.Cache
	rps      float64
	burst    int
}

func newLimiterStore(rps float64, burst int) *limiterStore {
	return &limiterStore{
		limiters: cache.New(limiterIdleTTL, limiterCleanupInterval),
		rps:      rps,
		burst:    burst,
	}
}

// get returns the limiter for key, creating it on first use and refreshing its expiry.
func (s *limiterStore) get(key string) *rate.Limiter {
	if v, found := s.limiters.Get(key); found {
		limiter := v.(*rate.Limiter)
		s.limiters.SetDefault(key, limiter)
		return limiter
	}

	limiter := rate.NewLimiter(rate.Limit(s.rps), s.burst)
	if err := s.limiters.Add(key, limiter, cache.DefaultExpiration); err != nil {
		// Another request created it first.
		if v, found := s.limiters.Get(key); found {
			return v.(*rate.Limiter)
		}
	}
	return limiter
}

// allow reports whether a request for key may proceed. When it may not, the second
// result is the number of seconds until it would.
func (s *limiterStore) allow(key string) (bool, int) {
	limiter := s.get(key)
	if limiter.Allow() {
		return true, 0
	}

	reservation := limiter.Reserve()
	retryAfter := int(reservation.Delay().Seconds())
	reservation.Cancel()
	if retryAfter < 1 {
		retryAfter = 1
	}
	return false, retryAfter
}

func abortRateLimited(c *gin.Context, retryAfter int, message string) {
	c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
	c.JSON(http.StatusTooManyRequests, gin.H{
		"error":   "rate_limit_exceeded",
		"message": message,
	})
	c.Abort()
}

func logRateLimited(logger *slog.Logger, attr slog.Attr, retryAfter int) {
	logger.Debug("rate limit exceeded", attr, slog.Int("retry_after", retryAfter))
}
