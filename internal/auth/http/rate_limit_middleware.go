package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/mediavault/internal/errors"
	"github.com/allisson/mediavault/internal/httputil"
)

// RateLimitMiddleware enforces a per-user token bucket on authenticated requests. It must
// run after AuthenticationMiddleware. Requests over the limit get 429 with Retry-After.
func RateLimitMiddleware(rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newLimiterStore(rps, burst)

	return func(c *gin.Context) {
		userID, ok := GetUserID(c.Request.Context())
		if !ok {
			logger.Error("rate limit middleware: no authenticated user in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if allowed, retryAfter := store.allow(userID.String()); !allowed {
			logRateLimited(logger, slog.String("user_id", userID.String()), retryAfter)
			abortRateLimited(c, retryAfter, "Too many requests. Please retry after the specified delay.")
			return
		}

		c.Next()
	}
}
