package response

import "github.com/gin-gonic/gin"

// Every handler answers with the same envelope the mobile client expects:
// {"success": true, "data": ...} or {"success": false, "error": {...}}.

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
