package main

import (
	"log"
	"os"
	"strings"

	"tasknest/tasknest/config"
	"tasknest/tasknest/database"
	"tasknest/tasknest/middleware"
	"tasknest/tasknest/routes"
	"tasknest/tasknest/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg := config.LoadAPI()
	logStartup(cfg)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	acquirer := database.NewAcquirer()

	// Migrations run once on a short-lived startup connection. A database
	// that is down at boot is not fatal; handlers retry on each request.
	if db, err := acquirer.Acquire(cfg); err != nil {
		log.Printf("Warning: database unavailable at startup: %v", err)
	} else {
		if err := database.RunMigrations(db); err != nil {
			log.Printf("Warning: migrations failed: %v", err)
		}
		db.Close()
	}

	router := gin.New()
	router.Use(gin.Logger(), middleware.Recovery(), middleware.CORSMiddleware(cfg.AllowedOrigins))

	routes.RegisterErrorHandlers(router)
	routes.RegisterHomeRoutes(router, "Task API", "Welcome to the Task API")
	routes.RegisterTodoRoutes(router, cfg, acquirer, services.TodoServiceInstance)

	addr := cfg.Host + ":" + cfg.Port
	log.Printf("Task API listening on %s", addr)
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
	log.Println("Starting Task API")
	log.Printf("  Host: %s  Port: %s  Debug: %v", cfg.Host, cfg.Port, cfg.Debug)
	log.Printf("  DB_HOST: %s  DB_USER: %s  DB_NAME: %s", cfg.DBHost, cfg.DBUser, cfg.DBName)
	log.Printf("  DB_PASSWORD_FILE: %s", setOrNot("DB_PASSWORD_FILE"))
	log.Printf("  DB_PASSWORD (env): %s", setOrNot("DB_PASSWORD"))
	log.Printf("  SECRET_KEY_FILE: %s", setOrNot("SECRET_KEY_FILE"))
	log.Printf("  SECRET_KEY (env): %s", setOrNot("SECRET_KEY"))
	log.Println(strings.Repeat("=", 60))
}
