package Models

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"Tasker/Config"
)

// Connect opens the database named by the configuration and runs the
// idempotent schema migration. The returned handle is passed to the
// controllers; nothing here keeps global state.
func Connect(cfg *Config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dialector = mysql.Open(cfg.DBDSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.DBDriver, err)
	}

	if err := db.AutoMigrate(&Task{}); err != nil {
		return nil, fmt.Errorf("failed to migrate tasks table: %w", err)
	}

	return db, nil
}
