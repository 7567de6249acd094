package routes

import (
	"fmt"
	"net/http"
	"time"

	"tasknest/tasknest/models"
	"tasknest/tasknest/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func RegisterNotificationRoutes(router *gin.Engine, emailService services.EmailServiceInterface) {
	router.POST("/send", func(c *gin.Context) { SendNotification(c, emailService) })
}

func SendNotification(c *gin.Context, emailService services.EmailServiceInterface) {
	var req models.NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Type == "email" {
		result, err := emailService.SendEmail(req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}

	// Non-email types are acknowledged without any delivery attempt.
	c.JSON(http.StatusOK, models.DeliveryResult{
		ID:        uuid.New().String(),
		Success:   true,
		Simulated: true,
		Message:   fmt.Sprintf("%s notification simulated successfully", req.Type),
		Type:      req.Type,
		Recipient: req.Recipient,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
