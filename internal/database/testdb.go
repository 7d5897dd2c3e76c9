package database

import (
	"testing"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// NewTestDB creates a fresh in-memory SQLite database with the models
// migrated. Cache clients are nil; tests exercising cached repositories
// need a real valkey instance and are out of scope here.
func NewTestDB(t *testing.T) DB {
	t.Helper()

	sql, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:                 gormLogger.Default.LogMode(gormLogger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	// Every pooled connection must see the same in-memory database
	if sqlDB, err := sql.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	db := DB{
		SQL: sql,
		log: logger.New("database"),
	}

	if err := db.MigrateModels(); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := sql.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}
