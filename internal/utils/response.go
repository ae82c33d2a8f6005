package utils

import "github.com/gin-gonic/gin"

// Error writes the {error, details} failure envelope. details may be empty,
// in which case it is omitted.
func Error(c *gin.Context, code int, msg string, details string) {
	payload := gin.H{"error": msg}
	if details != "" {
		payload["details"] = details
	}
	c.JSON(code, payload)
}
