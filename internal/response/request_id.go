package response

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRequestID is the Gin context key for the request ID.
const ContextKeyRequestID = "request_id"

// RequestIDMiddleware assigns a unique request ID to every request so log
// lines and client reports can be correlated.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, reqID)
		c.Header("X-Request-ID", reqID)
		c.Next()
	}
}

// RequestID returns the request ID stored by RequestIDMiddleware, or an
// empty string when the middleware was not applied.
func RequestID(c *gin.Context) string {
	val, _ := c.Get(ContextKeyRequestID)
	id, _ := val.(string)
	return id
}
