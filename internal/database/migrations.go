package database

import (
	"rewear/internal/models"

	logger "github.com/Bparsons0904/goLogger"
)

// MigrateModels runs GORM AutoMigrate for all models
func (db *DB) MigrateModels() error {
	log := logger.New("database").Function("MigrateModels")
	log.Info("Starting database migration")

	modelsToMigrate := []interface{}{
		&models.User{},
		&models.UserRole{},
		&models.ClothingItem{},
		&models.Rental{},
	}

	for _, model := range modelsToMigrate {
		if err := db.SQL.AutoMigrate(model); err != nil {
			return log.Err("Failed to migrate model", err, "model", model)
		}
	}

	log.Info("Database migration completed successfully")
	return nil
}

// CreateIndexes creates indexes that GORM doesn't create automatically.
// The partial unique index backs the single-active-rental invariant: a
// clothing item can carry at most one reserved or rented rental.
func (db *DB) CreateIndexes() error {
	log := logger.New("database").Function("CreateIndexes")
	log.Info("Creating additional database indexes")

	indexes := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_rentals_single_active
			ON rentals (cloth_id)
			WHERE status IN ('reserved', 'rented') AND deleted_at IS NULL`,
		`CREATE INDEX IF NOT EXISTS idx_clothes_browse
			ON clothes (status, category, size)
			WHERE deleted_at IS NULL`,
		`CREATE INDEX IF NOT EXISTS idx_rentals_overdue
			ON rentals (end_date)
			WHERE status = 'rented' AND overdue = false AND deleted_at IS NULL`,
	}

	for _, indexSQL := range indexes {
		if err := db.SQL.Exec(indexSQL).Error; err != nil {
			log.Warn("Failed to create index", "sql", indexSQL, "error", err)
			// Continue with other indexes even if one fails
		}
	}

	log.Info("Additional database indexes created")
	return nil
}
