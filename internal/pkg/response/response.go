package response

import "github.com/gin-gonic/gin"

// Success writes the API envelope for a successful call.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes the API envelope for a failed call. The message is
// user-facing; grid views surface it verbatim when a placement is
// rejected.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
