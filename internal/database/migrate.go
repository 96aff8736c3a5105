package database

import (
	"aesn/internal/models"

	"gorm.io/gorm"
)

// Migrate applies the schema for all domain models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Media{},
		&models.Like{},
	)
}
