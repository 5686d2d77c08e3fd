package db

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rent-backend/internal/config"
	"rent-backend/internal/models"
)

// Connect opens the embedded sqlite database and creates the tenants table
// if it does not exist. sqlite's own file locking is the only concurrency
// boundary; there is no pooling discipline beyond database/sql defaults.
func Connect(cfg *config.Config) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	if err := gdb.AutoMigrate(&models.Tenant{}); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	log.Printf("[DB] Connected to sqlite database: %s", cfg.Database.Path)
	return gdb
}
