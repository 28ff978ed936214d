package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mri-dashboard/internal/config"
	"mri-dashboard/internal/models"
)

// Connect opens the database connection and migrates the schema.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Doctor{},
		&models.Session{},
		&models.Patient{},
		&models.MRIScan{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
