package testutils

import (
	"tasknest/tasknest/database"
	"tasknest/tasknest/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupSQLiteDB opens an in-memory database with the todos schema applied,
// for behavior-level tests that need real SQL semantics.
func SetupSQLiteDB() (*database.Database, func()) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(&models.Todo{}); err != nil {
		panic(err)
	}

	testDB := &database.Database{DB: db}
	close := func() {
		testDB.Close()
	}

	return testDB, close
}
