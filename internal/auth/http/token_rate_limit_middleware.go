package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// TokenRateLimitMiddleware enforces a per-IP token bucket on the unauthenticated sign-in
// and sign-up endpoints. The client address comes from gin's ClientIP.
func TokenRateLimitMiddleware(rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newLimiterStore(rps, burst)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		if allowed, retryAfter := store.allow(clientIP); !allowed {
			logRateLimited(logger, slog.String("client_ip", clientIP), retryAfter)
			abortRateLimited(c, retryAfter, "Too many requests from this IP. Please retry after the specified delay.")
			return
		}

		c.Next()
	}
}
