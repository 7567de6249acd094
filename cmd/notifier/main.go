package main

import (
	"log"
	"os"
	"strings"

	"tasknest/tasknest/config"
	"tasknest/tasknest/middleware"
	"tasknest/tasknest/routes"
	"tasknest/tasknest/secrets"
	"tasknest/tasknest/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg := config.LoadNotifier()
	logStartup(cfg)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	resolver := secrets.NewResolver()
	emailService := services.NewEmailService(cfg, resolver)
	services.EmailServiceInstance = emailService

	router := gin.New()
	router.Use(gin.Logger(), middleware.Recovery(), middleware.CORSMiddleware(cfg.AllowedOrigins))

	routes.RegisterErrorHandlers(router)
	routes.RegisterHomeRoutes(router, "Notifications Service", "Welcome to the Notifications Service")
	routes.RegisterNotificationRoutes(router, services.EmailServiceInstance)

	addr := cfg.Host + ":" + cfg.Port
	log.Printf("Notifications Service listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func logStartup(cfg config.Config) {
	setOrNot := func(key string) string {
		if os.Getenv(key) != "" {
			return "SET"
		}
		return "NOT SET"
	}

	log.Println(strings.Repeat("=", 60))
	log.Println("Starting Notifications Service")
	log.Printf("  Host: %s  Port: %s  Debug: %v", cfg.Host, cfg.Port, cfg.Debug)
	log.Printf("  SMTP_HOST: %s  SMTP_PORT: %d", cfg.SMTPHost, cfg.SMTPPort)
	log.Printf("  SMTP_USERNAME (env): %s", setOrNot("SMTP_USERNAME"))
	log.Printf("  SMTP_PASSWORD (env): %s", setOrNot("SMTP_PASSWORD"))
	log.Println(strings.Repeat("=", 60))
}
