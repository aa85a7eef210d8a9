package store

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mazrooa/fatoora/models"
)

// Open connects to the configured database and syncs the schema. A postgres
// DSN takes precedence; otherwise the sqlite path is used, which keeps dev
// and test setups dependency-free.
func Open(cfg models.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		path := cfg.SQLitePath
		if path == "" {
			path = "fatoora.db"
		}
		dialector = sqlite.Open(path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error in connecting to db: %w", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		return nil, fmt.Errorf("error in migrating schema: %w", err)
	}
	return db, nil
}
