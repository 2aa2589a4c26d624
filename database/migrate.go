package database

import (
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date. uuid_generate_v4 defaults on the
// id columns need the uuid-ossp extension, created here if missing.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Job{},
		&models.Application{},
	)
	if err != nil {
		return err
	}

	logger.Info("Database migration completed")
	return nil
}
