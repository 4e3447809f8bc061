package daemon

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/open-notebook/open-notebook-web/internal/config"
	"github.com/open-notebook/open-notebook-web/internal/db/models"
)

// seed creates the configured admin account when the user table is empty.
func seed(cfg *config.Config, db *gorm.DB) error {
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to count users")
	}

	if count > 0 {
		return nil
	}

	hash, err := models.HashPassword(cfg.Admin.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}

	if err = db.Create(&models.User{
		Username: cfg.Admin.Username,
		Password: hash,
		Active:   true,
	}).Error; err != nil {
		return errors.Wrap(err, "failed to create admin user")
	}

	log.Warn().Str("username", cfg.Admin.Username).Msg("created initial admin user, change its password")

	return nil
}
