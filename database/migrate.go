package database

import (
	"notake_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Note{},
		&models.NoteLink{},
		&models.FileMetadata{},
		&models.Profile{},
	)
}
