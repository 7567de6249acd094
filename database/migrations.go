package database

import (
	"fmt"
	"log"

	"tasknest/tasknest/models"
)

// RunMigrations creates or updates the todos table. The API runs this once at
// startup on a short-lived connection; request handlers never migrate.
func RunMigrations(db *Database) error {
	log.Println("Running database migrations...")
	if err := db.DB.AutoMigrate(&models.Todo{}); err != nil {
		return fmt.Errorf("failed to migrate todos table: %w", err)
	}
	log.Println("Database migrations completed successfully")
	return nil
}
