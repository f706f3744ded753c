package database

import (
	"avihire_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate runs AutoMigrate for every persisted model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.JobAd{},
		&models.JobApplication{},
	)
}
