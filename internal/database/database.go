package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/facsched/planner/internal/entities"
)

// Database owns the single SQLite connection handle for the process.
// Construct it once at startup and Close it at shutdown; every repository
// borrows the inner *gorm.DB.
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the SQLite file at dbPath and migrates the schema.
// Migration is idempotent: existing tables are left alone. Foreign keys are
// enabled on every pooled connection so cascade deletes are enforced by the
// engine itself.
func NewDatabase(dbPath string) (*Database, error) {
	return NewDatabaseWithLogger(dbPath, logger.Default.LogMode(logger.Info))
}

// NewDatabaseWithLogger is NewDatabase with a caller-supplied GORM logger.
// Tests use it to silence query logging.
func NewDatabaseWithLogger(dbPath string, l logger.Interface) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		Logger:         l,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database at %s: %v", ErrInit, dbPath, err)
	}

	err = db.AutoMigrate(
		&entities.User{},
		&entities.Subject{},
		&entities.Schedule{},
		&entities.ConsultationRequest{},
		&entities.Enrollment{},
		&entities.Setting{},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to migrate schema: %v", ErrInit, err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
