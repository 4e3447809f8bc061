package models

import "time"

// Preference holds the per user UI preferences shared by every page: the sidebar
// collapse flag and the color theme.
type Preference struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"uniqueIndex;not null"`
	Collapsed bool
	Theme     string `gorm:"size:20"`
	UpdatedAt time.Time
}
