// middleware/rate_limiter.go

package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/bookfeed/logging"
	"github.com/dev-mohitbeniwal/bookfeed/util"
)

// RateLimitStore counts requests per key over a sliding window.
// db.RedisStore implements it.
type RateLimitStore interface {
	RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error)
}

// RateLimiter limits requests per authenticated user, or per client IP
// before authentication. When the store is unavailable requests are let
// through.
func RateLimiter(store RateLimitStore, limit int, per time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if user, err := util.GetRequestingUser(c); err == nil {
			key = "user:" + user.ID
		}

		allowed, err := store.RateLimit(c.Request.Context(), key, limit, per)
		if err != nil {
			logger.Warn("Rate limiting unavailable, allowing request", zap.Error(err), zap.String("key", key))
			c.Next()
			return
		}

		// Set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Duration", per.String())

		if !allowed {
			logger.Warn("Rate limit exceeded",
				zap.String("key", key),
				zap.Int("limit", limit),
				zap.Duration("per", per))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}
