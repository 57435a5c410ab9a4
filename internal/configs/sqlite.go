package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	repository "task-desk.com/task-desk/internal/repositories"
)

func NewDatabaseClient(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(repository.AllModels()...); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
