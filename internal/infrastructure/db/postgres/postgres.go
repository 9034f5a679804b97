// Package postgres implements the repository ports on PostgreSQL via GORM.
package postgres

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/aquapure/sales-portal/internal/infrastructure/config"
)

// Open connects to PostgreSQL and configures the connection pool.
func Open(cfg config.PostgresConfig, log zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // no implicit prepared statements
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	log.Info().Str("host", cfg.Host).Str("database", cfg.DBName).Msg("connected to postgres")
	return db, nil
}

// Migrate creates or updates the three portal tables.
func Migrate(db *gorm.DB, log zerolog.Logger) error {
	if err := db.AutoMigrate(&userModel{}, &auditModel{}, &weeklyMetricsModel{}); err != nil {
		log.Error().Err(err).Msg("schema migration failed; verify database permissions and rerun")
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
