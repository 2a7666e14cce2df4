package infrastructure

import (
	"time"

	"go.uber.org/zap"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"rest-user-service/internal/adapter/repository/postgres"
	"rest-user-service/internal/config"
	apperrors "rest-user-service/pkg/errors"
	"rest-user-service/pkg/logger"
)

// NewDatabase opens the database connection, configures the pool and makes
// sure the users table exists.
func NewDatabase(cfg *config.Config, l *zap.Logger) (*gorm.DB, error) {
	gormLogger := logger.NewGormLogger(l, cfg.Logger.SlowQuerySeconds, cfg.Logger.Level)

	db, err := gorm.Open(pgdriver.Open(cfg.DB.DSN()), &gorm.Config{
		Logger: gormLogger,
		// Driver unique-violations become gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return nil, apperrors.NewConnectionError("failed to connect to database", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, apperrors.NewConnectionError("failed to get underlying sql.DB", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.DB.ConnMaxLifetime) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.DB.ConnMaxIdleTime) * time.Second)

	// Idempotent: creates the users table only when absent
	if err := postgres.Migrate(db); err != nil {
		return nil, err
	}

	l.Info("database connected successfully",
		zap.Int("max_open_conns", cfg.DB.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.DB.MaxIdleConns),
	)

	return db, nil
}

// CloseDatabase closes the database connection
func CloseDatabase(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
