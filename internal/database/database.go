// Package database handles database connections and migrations.
package database

import (
	"fmt"
	"time"

	"smartlife/internal/config"
	"smartlife/internal/middleware"
	"smartlife/internal/models"
	"smartlife/internal/observability"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const startedAtKey = "metrics:started_at"

// DB is the global database connection instance.
var DB *gorm.DB

// Connect opens a PostgreSQL connection using the provided configuration and returns the gorm DB instance.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	sslMode := cfg.DBSSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		sslMode,
	)

	dbInstance, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: NewGormLogger(middleware.Logger),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	middleware.Logger.Info("Database connected successfully")

	if err := RegisterMetrics(dbInstance); err != nil {
		return nil, fmt.Errorf("failed to register database metrics: %w", err)
	}

	if !cfg.IsProduction() {
		if err := Migrate(dbInstance); err != nil {
			return nil, err
		}
		middleware.Logger.Info("Database migration completed")
	}

	sqlDB, err := dbInstance.DB()
	if err == nil {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}

	DB = dbInstance
	return DB, nil
}

// Migrate creates or updates the schema for every persisted model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Workout{}, &models.Progress{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// RegisterMetrics records per-table query latency for every CRUD operation.
func RegisterMetrics(db *gorm.DB) error {
	before := func(tx *gorm.DB) {
		tx.InstanceSet(startedAtKey, time.Now())
	}
	after := func(operation string) func(*gorm.DB) {
		return func(tx *gorm.DB) {
			v, ok := tx.InstanceGet(startedAtKey)
			if !ok {
				return
			}
			if started, ok := v.(time.Time); ok {
				observability.DatabaseQueryLatency.
					WithLabelValues(operation, tx.Statement.Table).
					Observe(time.Since(started).Seconds())
			}
		}
	}

	cb := db.Callback()
	steps := []struct {
		name string
		err  error
	}{
		{"create", cb.Create().Before("gorm:create").Register("metrics:before_create", before)},
		{"create", cb.Create().After("gorm:create").Register("metrics:after_create", after("create"))},
		{"select", cb.Query().Before("gorm:query").Register("metrics:before_query", before)},
		{"select", cb.Query().After("gorm:query").Register("metrics:after_query", after("select"))},
		{"update", cb.Update().Before("gorm:update").Register("metrics:before_update", before)},
		{"update", cb.Update().After("gorm:update").Register("metrics:after_update", after("update"))},
		{"delete", cb.Delete().Before("gorm:delete").Register("metrics:before_delete", before)},
		{"delete", cb.Delete().After("gorm:delete").Register("metrics:after_delete", after("delete"))},
	}
	for _, s := range steps {
		if s.err != nil {
			return fmt.Errorf("%s callback: %w", s.name, s.err)
		}
	}
	return nil
}
