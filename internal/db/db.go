// Package db opens the application database and migrates its schema.
package db

import (
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/open-notebook/open-notebook-web/internal/config"
	"github.com/open-notebook/open-notebook-web/internal/db/dsn"
	"github.com/open-notebook/open-notebook-web/internal/db/models"
	"github.com/open-notebook/open-notebook-web/internal/logger/adapter/stdlogger"
)

const slowQueryThreshold = 200 * time.Millisecond

// Dialector returns the gorm driver selected by cfg.DB.GormEngine.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DB.GormEngine {
	case config.EngineSQLite, "":
		return sqlite.Open(cfg.DB.Path), nil
	case config.EngineMySQL:
		return mysql.Open(dsn.Create(cfg)), nil
	case config.EnginePostgres:
		return postgres.Open(dsn.CreatePostgres(cfg)), nil
	default:
		return nil, config.ErrUnknownGormEngine
	}
}

// Open connects to the configured database with a zerolog backed gorm logger.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	logLevel := gormlogger.Warn
	if cfg.DevMode {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(stdlogger.NewWithLevel(zerolog.WarnLevel), gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	return db, nil
}

// Migrate creates or updates every table the web shell uses.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Preference{},
		&models.Session{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}

	return nil
}
