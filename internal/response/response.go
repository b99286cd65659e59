// Package response standardizes the JSON envelopes returned by the API.
// Success bodies carry success:true plus the operation payload; error
// bodies are {"success":false,"error":...}; validation failures itemize
// their messages as {"message":...,"errors":[...]}.
package response

import "github.com/gin-gonic/gin"

// Success sends a success envelope merging the payload into the body.
func Success(c *gin.Context, statusCode int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// Fail sends an error envelope with a single message.
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}

// FailValidation sends an itemized validation failure.
func FailValidation(c *gin.Context, statusCode int, message string, errs []string) {
	c.JSON(statusCode, gin.H{
		"message": message,
		"errors":  errs,
	})
}

// AbortFail aborts the middleware chain and sends an error envelope.
func AbortFail(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}
