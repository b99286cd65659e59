package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/zhufei/sports-backend/internal/response"
)

// RateLimiter implements a fixed-window per-IP rate limit backed by Redis,
// so the limit holds across server instances. Used on the login route to
// slow down credential guessing.
type RateLimiter struct {
	rdb      *redis.Client
	limit    int
	window   time.Duration
	keyspace string
	log      zerolog.Logger
}

// NewRateLimiter creates a RateLimiter allowing limit requests per window.
func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration, keyspace string, log zerolog.Logger) *RateLimiter {
	return &RateLimiter{
		rdb:      rdb,
		limit:    limit,
		window:   window,
		keyspace: keyspace,
		log:      log.With().Str("component", "ratelimit").Logger(),
	}
}

// Middleware returns a Gin middleware that rate-limits requests by client IP.
// Redis errors fail open: losing the limiter must not take down login.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s:%s", rl.keyspace, c.ClientIP())

		count, err := rl.rdb.Incr(ctx, key).Result()
		if err != nil {
			rl.log.Warn().Err(err).Msg("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		if count == 1 {
			// First hit opens the window.
			if err := rl.rdb.Expire(ctx, key, rl.window).Err(); err != nil {
				rl.log.Warn().Err(err).Msg("Failed to set rate limit window")
			}
		}

		if count > int64(rl.limit) {
			response.AbortFail(c, http.StatusTooManyRequests, response.MsgTooManyRequests)
			return
		}

		c.Next()
	}
}
