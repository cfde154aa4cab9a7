package infra

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"holiday-api/internal/config"
	"holiday-api/internal/models/db_models"
)

func InitPostgresql(cfg config.DatabaseConfig) (*gorm.DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database dsn is empty")
	}

	connectionPool, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if cfg.AutoMigrate {
		if err := Migrate(connectionPool); err != nil {
			return nil, err
		}
	}

	log.Info().Msg("Database connection established")
	return connectionPool, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(db_models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("Error getting database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing database connection")
	} else {
		log.Info().Msg("Database connection closed")
	}
}

// RunInTransaction runs fn in a transaction bound to ctx. A nil return
// commits; an error or panic rolls back. Calls on a *gorm.DB already inside
// a transaction nest through a savepoint.
func RunInTransaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return db.WithContext(ctx).Transaction(fn)
}
