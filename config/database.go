package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDatabase opens a connection using the backend selected by
// DATABASE_DRIVER. The handle is returned to the caller for injection into
// the stores; nothing in this package holds onto it.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Printf("Database connection established (%s)", cfg.DatabaseDriver)
	return db, nil
}

func openDialector(cfg *Config) (gorm.Dialector, error) {
	switch cfg.DatabaseDriver {
	case "postgres":
		return postgres.Open(cfg.DatabaseURL), nil
	case "sqlite":
		return sqlite.Open(cfg.DatabaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
}
