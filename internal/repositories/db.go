// Package repositories provides data access layer implementations.
// It handles all database operations and data persistence logic.
package repositories

import (
	"fmt"
	"log"
	"os"
	"time"

	"paygate/internal/config"
	"paygate/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DBConfig holds database connection pool configuration
type DBConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

func dbConfigFromEnv() DBConfig {
	return DBConfig{
		MaxIdleConns:    config.GetIntEnv("DB_MAX_IDLE_CONNS", 10),
		MaxOpenConns:    config.GetIntEnv("DB_MAX_OPEN_CONNS", 100),
		ConnMaxLifetime: config.GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		ConnMaxIdleTime: config.GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute),
	}
}

// DSN builds the postgres connection string from the environment.
func DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		config.GetEnv("DB_HOST", "localhost"),
		config.GetEnv("DB_USER", "postgres"),
		config.GetEnv("DB_PASSWORD", "postgres"),
		config.GetEnv("DB_NAME", "paygate"),
		config.GetEnv("DB_PORT", "5432"),
		config.GetEnv("DB_SSLMODE", "disable"),
	)
}

// InitDB opens the postgres connection, applies pool settings and, unless
// DB_AUTO_MIGRATE=false, migrates the gateway tables.
func InitDB() (*gorm.DB, error) {
	// Ignore "record not found": a missing credential row is an expected outcome.
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  !config.IsProduction(),
		},
	)

	db, err := gorm.Open(postgres.Open(DSN()), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	poolCfg := dbConfigFromEnv()
	sqlDB.SetMaxIdleConns(poolCfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(poolCfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(poolCfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(poolCfg.ConnMaxIdleTime)

	if config.GetBoolEnv("DB_AUTO_MIGRATE", true) {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	log.Println("✅ PostgreSQL connected")
	return db, nil
}

// Migrate creates or updates the gateway tables. Both processor credential
// tables share one model, so they are migrated by name.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.IntegrationLog{}, &models.MerchantWallet{}); err != nil {
		return fmt.Errorf("failed to migrate gateway tables: %w", err)
	}

	for _, table := range []string{models.CBDCCredentialTable, models.WiPayCredentialTable} {
		if err := db.Table(table).AutoMigrate(&models.ProcessorCredential{}); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", table, err)
		}
		// Index names are global in postgres, so the unique index is named per table here
		// rather than through a struct tag.
		stmt := fmt.Sprintf("CREATE UNIQUE INDEX IF NOT EXISTS idx_%s_merchant_id ON %s (merchant_id)", table, table)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to index %s: %w", table, err)
		}
	}
	return nil
}

// CloseDB closes the underlying connection pool.
func CloseDB(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("⚠️ Failed to get database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("⚠️ Failed to close database connection: %v", err)
	}
}
