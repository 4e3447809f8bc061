// Package preference persists the per user sidebar preferences: the collapse flag and the theme.
package preference

import (
	"errors"

	"gorm.io/gorm"

	"github.com/open-notebook/open-notebook-web/internal/db/models"
	"github.com/open-notebook/open-notebook-web/internal/sidebar"
)

const userIDQueryPattern = "user_id = ?"

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrUserIDZero is returned when no user is given.
	ErrUserIDZero = errors.New("user id cannot be zero")
)

// Defaults are used for users without a stored preference.
type Defaults struct {
	Collapsed bool
	Theme     sidebar.Theme
}

// Get returns the stored preference of a user, or an unsaved one carrying the defaults.
func Get(db *gorm.DB, userID uint64, defaults Defaults) (*models.Preference, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if userID == 0 {
		return nil, ErrUserIDZero
	}

	return find(db, userID, defaults)
}

// ToggleCollapse flips the collapse flag of a user and stores the result.
// It is the only writer of the flag.
func ToggleCollapse(db *gorm.DB, userID uint64, defaults Defaults) (*models.Preference, error) {
	return update(db, userID, defaults, func(p *models.Preference) {
		p.Collapsed = !p.Collapsed
	})
}

// SetTheme stores the theme of a user.
func SetTheme(db *gorm.DB, userID uint64, theme sidebar.Theme, defaults Defaults) (*models.Preference, error) {
	return update(db, userID, defaults, func(p *models.Preference) {
		p.Theme = string(sidebar.ParseTheme(string(theme)))
	})
}

// State is the sidebar state described by a stored preference.
func State(p *models.Preference) sidebar.State {
	return sidebar.StateFromCollapsed(p.Collapsed)
}

func update(db *gorm.DB, userID uint64, defaults Defaults, mutate func(p *models.Preference)) (*models.Preference, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if userID == 0 {
		return nil, ErrUserIDZero
	}

	var out *models.Preference

	err := db.Transaction(func(tx *gorm.DB) error {
		p, err := find(tx, userID, defaults)
		if err != nil {
			return err
		}

		mutate(p)

		if err = tx.Save(p).Error; err != nil {
			return err
		}

		out = p

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func find(db *gorm.DB, userID uint64, defaults Defaults) (*models.Preference, error) {
	var p models.Preference

	result := db.Where(userIDQueryPattern, userID).First(&p)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			theme := defaults.Theme
			if theme == "" {
				theme = sidebar.ThemeSystem
			}

			return &models.Preference{
				UserID:    userID,
				Collapsed: defaults.Collapsed,
				Theme:     string(theme),
			}, nil
		}

		return nil, result.Error
	}

	return &p, nil
}
