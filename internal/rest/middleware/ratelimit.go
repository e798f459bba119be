package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pagetalk/comment-api/internal/rest/response"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const rateLimitKeyPrefix = "ratelimit:"

// RateLimit is a fixed-window limiter keyed by client IP, backed by redis so
// the window survives across instances. When redis is unreachable the request
// passes through; throttling is not worth an outage.
func RateLimit(client *redis.Client, window time.Duration, max int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateLimitKeyPrefix + c.ClientIP()
		ctx := c.Request.Context()

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			logrus.Warnf("rate limiter unavailable: %v", err)
			c.Next()
			return
		}
		if count == 1 {
			if err := client.Expire(ctx, key, window).Err(); err != nil {
				logrus.Warnf("failed to set rate limit window: %v", err)
			}
		} else if ttl, err := client.TTL(ctx, key).Result(); err == nil && ttl < 0 {
			// A counter that lost its expiry (crash between INCR and EXPIRE)
			// would throttle this client forever; re-arm the window.
			if err := client.Expire(ctx, key, window).Err(); err != nil {
				logrus.Warnf("failed to re-arm rate limit window: %v", err)
			}
		}

		if count > max {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Err("Too many requests, please try again later"))
			return
		}

		c.Next()
	}
}
