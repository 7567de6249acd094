package middleware

import (
	"log"
	"net/http"

	gin "github.com/gin-gonic/gin"
)

// Recovery turns panics into the shared JSON error shape instead of an empty
// 500 body; the process keeps serving.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}
