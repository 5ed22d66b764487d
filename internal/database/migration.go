package database

import (
	"fmt"

	"github.com/DadoBotGaming/voluntary-association/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Family{},
		&models.Product{},
		&models.InventoryEntry{},
		&models.InventoryLoad{},
		&models.Project{},
		&models.Activity{},
		&models.NewsPost{},
		&models.Distribution{},
		&models.DistributionLineItem{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
