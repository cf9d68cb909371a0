package migration

import (
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"gavel/internal/shared/logger"
)

// GooseMigrator runs SQL migrations from a scripts directory using goose.
type GooseMigrator struct {
	scriptsPath string
	logger      logger.Interface
}

func NewGooseMigrator(scriptsPath string, log logger.Interface) *GooseMigrator {
	return &GooseMigrator{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.goose"),
	}
}

// Up applies all pending migrations.
func (m *GooseMigrator) Up(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		m.logger.Warnw("failed to get current version", "error", err)
	} else {
		m.logger.Infow("current migration version", "version", currentVersion)
	}

	if err := goose.Up(sqlDB, m.scriptsPath); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err == nil {
		m.logger.Infow("migrations completed", "version", finalVersion)
	}

	return nil
}

// Down rolls back the given number of migrations.
func (m *GooseMigrator) Down(db *gorm.DB, steps int) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, m.scriptsPath); err != nil {
			return fmt.Errorf("failed to rollback migration: %w", err)
		}
	}

	return nil
}

// Status prints the per-script migration status.
func (m *GooseMigrator) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.Status(sqlDB, m.scriptsPath)
}

// Version returns the current migration version.
func (m *GooseMigrator) Version(db *gorm.DB) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect("mysql"); err != nil {
		return 0, fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.GetDBVersion(sqlDB)
}

// Create scaffolds a new timestamped SQL migration file.
func (m *GooseMigrator) Create(name string) error {
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.Create(nil, m.scriptsPath, name, "sql")
}
