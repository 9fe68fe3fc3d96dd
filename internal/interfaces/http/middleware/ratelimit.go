package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"revu/internal/infrastructure/ratelimit"
	"revu/internal/shared/logger"
)

// RateLimit bounds requests per client IP. When the limiter backend is
// unreachable the request is let through; limiting is protection, not a
// dependency.
func RateLimit(limiter ratelimit.RateLimiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warnw("rate limiter unavailable, letting request through", "error", err)
			c.Next()
			return
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   gin.H{"message": "too many requests"},
			})
			return
		}

		c.Next()
	}
}
