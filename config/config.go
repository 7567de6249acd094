package config

import (
	"log"
	"os"
	"strconv"

	"tasknest/tasknest/secrets"
)

// Config holds everything a process needs at startup. It is built once in
// main and passed by reference into handlers; nothing reads the environment
// after load.
type Config struct {
	Host           string
	Port           string
	Debug          bool
	AllowedOrigins string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	SecretKey string

	SMTPHost string
	SMTPPort int
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("%s not set, defaulting to %s", key, defaultValue)
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Invalid integer value for %s, defaulting to %d", key, defaultValue)
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		switch value {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
		log.Printf("Invalid boolean value for %s, defaulting to %v", key, defaultValue)
	}
	return defaultValue
}

// LoadAPI builds the Task API configuration. The database password and the
// application secret key go through the secret resolution chain; everything
// else is plain environment with defaults. An empty resolved password is a
// valid credential.
func LoadAPI() Config {
	log.Println("Loading Task API configuration...")
	resolver := secrets.NewResolver()
	dbPassword, _ := resolver.Resolve("db_password")
	secretKey, _ := resolver.Resolve("secret_key")

	return Config{
		Host:           getEnv("HOST", "0.0.0.0"),
		Port:           getEnv("PORT", "5000"),
		Debug:          getEnvAsBool("APP_DEBUG", false),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     dbPassword,
		DBName:         getEnv("DB_NAME", "todos_db"),
		SecretKey:      secretKey,
	}
}

// LoadNotifier builds the Notification Service configuration. SMTP
// credentials are deliberately absent here: they are resolved on every send
// so that secrets mounted after startup are still picked up.
func LoadNotifier() Config {
	log.Println("Loading Notification Service configuration...")

	return Config{
		Host:           getEnv("HOST", "0.0.0.0"),
		Port:           getEnv("PORT", "8001"),
		Debug:          getEnvAsBool("APP_DEBUG", false),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       getEnvAsInt("SMTP_PORT", 587),
	}
}
