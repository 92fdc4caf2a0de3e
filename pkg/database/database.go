package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/sefazor/galbi-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	// DatabaseURL selects postgres when set.
	DatabaseURL string
	// SQLitePath is used when DatabaseURL is empty. ":memory:" keeps everything in process.
	SQLitePath string
	LogLevel   logger.LogLevel
}

// Open connects to postgres or the embedded SQLite database.
func Open(opts Options) (*gorm.DB, error) {
	level := opts.LogLevel
	if level == 0 {
		level = logger.Warn
	}
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	}

	if opts.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(opts.DatabaseURL), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return db, nil
	}

	path := opts.SQLitePath
	if path == "" {
		path = ":memory:"
	}
	db, err := gorm.Open(sqlite.Open(sqliteDSN(path)), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// every connection to :memory: is a separate database, and sqlite has a single writer anyway
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func sqliteDSN(path string) string {
	if path == ":memory:" {
		return path
	}
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Creation{},
		&models.UploadedImage{},
		&models.Payment{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// OpenTest returns a migrated in-memory database.
func OpenTest() (*gorm.DB, error) {
	db, err := Open(Options{SQLitePath: ":memory:", LogLevel: logger.Silent})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
