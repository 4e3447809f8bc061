package daemon

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-notebook/open-notebook-web/internal/config"
	"github.com/open-notebook/open-notebook-web/internal/db"
	"github.com/open-notebook/open-notebook-web/internal/db/models"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Title: "Open Notebook",
		DB: config.DB{
			GormEngine: config.EngineSQLite,
			Path:       filepath.Join(t.TempDir(), "test.db"),
		},
		Admin: config.Admin{Username: "admin", Password: "changeme"},
		Webserver: config.Webserver{
			Port: 8080,
			URL:  "http://localhost",
		},
	}
}

func TestSeed_CreatesAdminOnce(t *testing.T) {
	cfg := newTestConfig(t)

	gormDB, err := db.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))

	require.NoError(t, seed(cfg, gormDB))

	cfg.Admin.Username = "second"
	require.NoError(t, seed(cfg, gormDB))

	var users []models.User
	require.NoError(t, gormDB.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].Username)
	assert.True(t, users[0].Active)
	assert.True(t, users[0].VerifyPassword("changeme"))
}

func TestSeed_SkippedWithoutAdmin(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Admin = config.Admin{}

	gormDB, err := db.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	require.NoError(t, seed(cfg, gormDB))

	var count int64
	require.NoError(t, gormDB.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSessionStorage(t *testing.T) {
	cfg := newTestConfig(t)

	gormDB, err := db.Open(cfg)
	require.NoError(t, err)

	storage, err := sessionStorage(cfg, gormDB)
	require.NoError(t, err)
	assert.Nil(t, storage)

	cfg.Webserver.Session.Storage = config.SessionStorageDB
	storage, err = sessionStorage(cfg, gormDB)
	require.NoError(t, err)
	assert.NotNil(t, storage)

	cfg.Webserver.Session.Storage = "redis"
	_, err = sessionStorage(cfg, gormDB)
	assert.ErrorIs(t, err, config.ErrUnknownSessionStorage)
}

func TestNew(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Webserver.Session.Storage = config.SessionStorageDB

	d, err := New(cfg)
	require.NoError(t, err)
	assert.NotNil(t, d.webService)
	assert.NotNil(t, d.sessions)

	_, err = New(nil)
	assert.Error(t, err)
}
