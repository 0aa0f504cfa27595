package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the configured database engine. The sqlite path's parent
// directory is created on demand so a fresh checkout can start cold.
func Open(driver, databaseURL, sqlitePath string) (*gorm.DB, error) {
	switch driver {
	case "sqlite", "":
		if dir := filepath.Dir(sqlitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite directory: %w", err)
			}
		}
		return gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{})
	case "postgres":
		return gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}
