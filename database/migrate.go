package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"supermock_backend/internal/config"
	"supermock_backend/internal/logger"
	"supermock_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm инициализирует GORM с URL из конфигурации
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.InterviewCard{},
		&models.Application{},
		&models.Feedback{},
		&models.Subscription{},
		&models.Payment{},
	)
	if err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}

	logger.Info("AutoMigrate completed")
	return nil
}
