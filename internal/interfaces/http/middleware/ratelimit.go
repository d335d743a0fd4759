package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"trackd/internal/infrastructure/ratelimit"
	"trackd/internal/shared/logger"
	"trackd/internal/shared/utils"
)

// RateLimit returns a middleware enforcing a per-client-IP request limit
// over a sliding window. A failing limiter backend lets requests through
// rather than blocking all traffic.
func RateLimit(limiter ratelimit.RateLimiter, requests int, window time.Duration) gin.HandlerFunc {
	log := logger.NewLogger().Named("ratelimit")
	config := ratelimit.RateLimitConfig{
		Requests: requests,
		Window:   window,
	}

	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:ip:%s", c.ClientIP())

		allowed, err := limiter.Allow(key, config)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
