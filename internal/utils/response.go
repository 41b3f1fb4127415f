package utils

import "github.com/gin-gonic/gin"

// SuccessResponse writes the uniform envelope the dashboard expects.
func SuccessResponse(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// ErrorResponse surfaces the failure message to the caller verbatim;
// callers needing a stable error contract must wrap this.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}
