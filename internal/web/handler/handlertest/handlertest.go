// Package handlertest holds the shared fixtures of the web handler tests.
package handlertest

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/open-notebook/open-notebook-web/internal/config"
	dbpkg "github.com/open-notebook/open-notebook-web/internal/db"
	"github.com/open-notebook/open-notebook-web/internal/db/models"
	"github.com/open-notebook/open-notebook-web/internal/web/handler"
	"github.com/open-notebook/open-notebook-web/internal/web/session"
)

// Render is one call of the views engine.
type Render struct {
	Name    string
	Data    fiber.Map
	Layouts []string
}

// Views is a fiber views engine that records renders and writes the
// template name, or the "error" field when one is set.
type Views struct {
	mu      sync.Mutex
	renders []Render
}

// Load implements fiber.Views.
func (v *Views) Load() error { return nil }

// Render implements fiber.Views.
func (v *Views) Render(w io.Writer, name string, data interface{}, layouts ...string) error {
	m, _ := data.(fiber.Map)

	v.mu.Lock()
	v.renders = append(v.renders, Render{Name: name, Data: m, Layouts: layouts})
	v.mu.Unlock()

	if msg, ok := m["error"].(string); ok && msg != "" {
		_, err := io.WriteString(w, msg)
		return err
	}

	_, err := io.WriteString(w, name)

	return err
}

// Last returns the most recent render.
func (v *Views) Last(t *testing.T) Render {
	t.Helper()

	v.mu.Lock()
	defer v.mu.Unlock()

	require.NotEmpty(t, v.renders, "nothing was rendered")

	return v.renders[len(v.renders)-1]
}

// NewApp returns a fiber app recording its renders.
func NewApp() (*fiber.App, *Views) {
	views := &Views{}

	return fiber.New(fiber.Config{Views: views}), views
}

// NewDB opens a migrated in-memory sqlite database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	return db
}

// NewConfig returns a config fit for handler tests.
func NewConfig() *config.Config {
	return &config.Config{
		Title: "Open Notebook",
		Brand: config.Brand{Name: "Open Notebook", Logo: "/static/logo.svg"},
		Sidebar: config.Sidebar{
			ShortcutKey: "K",
		},
		Webserver: config.Webserver{
			URL:     "http://localhost",
			Port:    3000,
			Session: config.Session{ExpiryTime: time.Minute},
		},
	}
}

// CreateUser stores an active user with the given password.
func CreateUser(t *testing.T, db *gorm.DB, username, password string) models.User {
	t.Helper()

	hash, err := models.HashPassword(password)
	require.NoError(t, err)

	user := models.User{
		Active:   true,
		Username: username,
		Email:    username + "@example.com",
		Password: hash,
	}
	require.NoError(t, db.Create(&user).Error)

	return user
}

// SignIn stores a session for user and returns its id.
func SignIn(t *testing.T, user models.User, platform string) string {
	t.Helper()

	id, err := session.GenerateSessionID()
	require.NoError(t, err)

	data := session.Data{User: user, Platform: platform}
	require.NoError(t, data.Write(id, time.Minute))

	return id
}

// WithSession is a middleware putting the stored session of the cookie into
// fiber.Locals the way the auth middleware does.
func WithSession(c *fiber.Ctx) error {
	id := c.Cookies(session.CookieName)

	data := new(session.Data)
	if err := data.Read(id); err == nil {
		c.Locals(handler.LocalsSession, data)
		c.Locals(handler.LocalsSessionID, id)

		if data.User.ID > 0 {
			c.Locals(handler.LocalsCurrentUser, data.User)
		}
	}

	return c.Next()
}

// Do sends a request with an optional session cookie and url encoded form.
func Do(t *testing.T, app *fiber.App, method, target, sessionID string, form url.Values) *http.Response {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	}

	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sessionID})
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err, fmt.Sprintf("%s %s", method, target))

	return resp
}

// Body reads and closes the response body.
func Body(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(b)
}
