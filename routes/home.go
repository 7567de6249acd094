package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RegisterHomeRoutes wires the welcome and health endpoints for a service.
func RegisterHomeRoutes(router *gin.Engine, serviceName, welcome string) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": welcome})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   serviceName,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
}

// RegisterErrorHandlers maps unmatched requests to the fixed JSON error
// shape shared by every failure response.
func RegisterErrorHandlers(router *gin.Engine) {
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	})
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})
}
