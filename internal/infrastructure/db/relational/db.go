// Package relational stores users, posts and profiles through gorm, on
// PostgreSQL in production and SQLite for local runs and tests.
package relational

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func OpenPostgres(dsn string) (*gorm.DB, error) {
	return open(postgres.Open(dsn))
}

func OpenSQLite(path string) (*gorm.DB, error) {
	return open(sqlite.Open(path))
}

func open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialector.Name(), err)
	}
	if err := db.AutoMigrate(&UserModel{}, &PostModel{}, &ProfileModel{}); err != nil {
		return nil, fmt.Errorf("migrate %s: %w", dialector.Name(), err)
	}
	log.Printf("✅ Connected to %s", dialector.Name())
	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
