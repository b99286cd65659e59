package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newLimiterRouter(rdb *redis.Client, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(rdb, limit, time.Minute, "login", zerolog.Nop())

	r := gin.New()
	r.POST("/login", rl.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func doLogin(r *gin.Engine, remoteAddr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	r := newLimiterRouter(rdb, 3)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doLogin(r, "10.0.0.1:1234"))
	}
	assert.Equal(t, http.StatusTooManyRequests, doLogin(r, "10.0.0.1:1234"))
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	r := newLimiterRouter(rdb, 1)

	assert.Equal(t, http.StatusOK, doLogin(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, doLogin(r, "10.0.0.1:1234"))

	// A different IP has its own window.
	assert.Equal(t, http.StatusOK, doLogin(r, "10.0.0.2:1234"))
}

func TestRateLimiterWindowExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	r := newLimiterRouter(rdb, 1)

	assert.Equal(t, http.StatusOK, doLogin(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, doLogin(r, "10.0.0.1:1234"))

	mr.FastForward(time.Minute + time.Second)

	assert.Equal(t, http.StatusOK, doLogin(r, "10.0.0.1:1234"))
}

func TestRateLimiterFailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	r := newLimiterRouter(rdb, 1)
	mr.Close()

	// Redis down: requests pass through rather than locking everyone out.
	assert.Equal(t, http.StatusOK, doLogin(r, "10.0.0.1:1234"))
}
