package database

import (
	"fmt"
	"log"

	"teamhub-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresConnection opens the GORM Postgres connection.
// TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey instead of driver-specific errors.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	log.Println("[Database] Connected to Postgres")
	return db, nil
}
