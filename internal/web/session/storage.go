package session

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/open-notebook/open-notebook-web/internal/db/models"
)

// DBStorage implements fiber.Storage on the application database.
type DBStorage struct {
	db *gorm.DB
}

// NewDBStorage returns a storage writing to the sessions table.
func NewDBStorage(db *gorm.DB) *DBStorage {
	if db == nil {
		panic("db cannot be nil")
	}

	return &DBStorage{db: db}
}

// Get returns the stored value, nil for missing or expired keys.
func (s *DBStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}

	var row models.Session

	err := s.db.Where("id = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	if row.ExpiresAt != nil && row.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}

	return row.Value, nil
}

// Set stores value under key. A zero exp never expires.
func (s *DBStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}

	row := models.Session{ID: key, Value: val}
	if exp > 0 {
		expiresAt := time.Now().Add(exp)
		row.ExpiresAt = &expiresAt
	}

	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
}

// Delete removes key.
func (s *DBStorage) Delete(key string) error {
	if key == "" {
		return nil
	}

	return s.db.Where("id = ?", key).Delete(&models.Session{}).Error
}

// Reset removes every session.
func (s *DBStorage) Reset() error {
	return s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Session{}).Error
}

// Close is a no-op, the database is owned by the daemon.
func (s *DBStorage) Close() error {
	return nil
}

// GC removes expired sessions.
func (s *DBStorage) GC() error {
	return s.db.Where("expires_at IS NOT NULL AND expires_at < ?", time.Now()).Delete(&models.Session{}).Error
}
