// Package session stores signed in users and per session UI state behind the "session" cookie.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/open-notebook/open-notebook-web/internal/db/models"
	"github.com/open-notebook/open-notebook-web/internal/sidebar"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

// ErrNotFound is returned when no data is stored for a session id.
var ErrNotFound = errors.New("session not found")

// Store is the global session store instance.
var Store *session.Store

// Data represents the session data structure.
type Data struct {
	User models.User
	// Platform is empty until the client reported it once.
	Platform string
}

// Write writes the session data for the given session ID with an expiration duration.
func (s *Data) Write(sessionID string, exp time.Duration) error {
	out, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return Store.Storage.Set(sessionID, out, exp)
}

// Read reads the session data for the given session ID.
func (s *Data) Read(sessionID string) error {
	if sessionID == "" {
		return ErrNotFound
	}

	byteData, err := Store.Storage.Get(sessionID)
	if err != nil {
		return err
	}

	if len(byteData) == 0 {
		return ErrNotFound
	}

	return json.Unmarshal(byteData, s)
}

// PlatformDetected reports whether the client already reported its platform.
func (s *Data) PlatformDetected() bool {
	return s.Platform != ""
}

// SidebarPlatform is the platform used for shortcut labels, the default until detected.
func (s *Data) SidebarPlatform() sidebar.Platform {
	return sidebar.ParsePlatform(s.Platform)
}

// Delete removes the session data for the given session ID.
func Delete(sessionID string) error {
	return Store.Storage.Delete(sessionID)
}

// Init initializes the session store. A nil storage keeps sessions in memory.
func Init(storage fiber.Storage) {
	cfg := session.Config{}
	if storage != nil {
		cfg.Storage = storage
	}

	Store = session.New(cfg)
}

// GenerateSessionID generates a new secure random session ID.
func GenerateSessionID() (string, error) {
	// 32 bytes = 256 bits
	b := make([]byte, 32) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}
