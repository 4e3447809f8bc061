package models

import "time"

// Session is a stored web session used by the database backed session storage.
type Session struct {
	ID        string `gorm:"primaryKey;size:128"`
	Value     []byte
	ExpiresAt *time.Time `gorm:"index"`
}
