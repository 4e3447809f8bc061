package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectConfigPath(t *testing.T) string {
	t.Helper()

	// Get the project root by going up from internal/config
	projectRoot, err := filepath.Abs("../../")
	require.NoError(t, err)

	return filepath.Join(projectRoot, "etc") + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(projectConfigPath(t))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Title)
	assert.NotZero(t, cfg.Webserver.Port)
	assert.NotEmpty(t, cfg.Webserver.URL)
	assert.Equal(t, EngineSQLite, cfg.DB.GormEngine)
	assert.Equal(t, 24*time.Hour, cfg.Webserver.Session.ExpiryTime)
	assert.Equal(t, SessionStorageDB, cfg.Webserver.Session.Storage)
	assert.Equal(t, "K", cfg.Sidebar.ShortcutKey)
	assert.Equal(t, "Open Notebook", cfg.Brand.Name)
	assert.Equal(t, "info", cfg.Log.LogLevel)
	assert.True(t, cfg.Log.Console.Enabled)
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig(t.TempDir() + string(filepath.Separator))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read main config file")
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	t.Setenv(EnvConfigJSON, `{"Title":"Test Override","Webserver":{"Port":9090},"Sidebar":{"DefaultCollapsed":true}}`)

	cfg, err := ReadConfig(projectConfigPath(t))
	require.NoError(t, err)

	assert.Equal(t, "Test Override", cfg.Title)
	assert.Equal(t, 9090, cfg.Webserver.Port)
	assert.True(t, cfg.Sidebar.DefaultCollapsed)
	// untouched keys keep their toml values
	assert.Equal(t, "http://localhost:8080", cfg.Webserver.URL)
}

func TestReadConfigWithBrokenJSONOverride(t *testing.T) {
	t.Setenv(EnvConfigJSON, `{"Title":`)

	_, err := ReadConfig(projectConfigPath(t))
	require.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name: "valid config",
			config: Config{
				Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
			},
		},
		{
			name: "missing port",
			config: Config{
				Webserver: Webserver{URL: "http://localhost:8080"},
			},
			wantErr: ErrWebServerPortCanNotBeZero,
		},
		{
			name: "missing URL",
			config: Config{
				Webserver: Webserver{Port: 8080},
			},
			wantErr: ErrEmptyURL,
		},
		{
			name: "unknown engine",
			config: Config{
				DB:        DB{GormEngine: "oracle"},
				Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
			},
			wantErr: ErrUnknownGormEngine,
		},
		{
			name: "postgres session storage",
			config: Config{
				DB:        DB{GormEngine: EnginePostgres},
				Webserver: Webserver{Port: 8080, URL: "http://localhost:8080", Session: Session{Storage: SessionStoragePostgres}},
			},
		},
		{
			name: "unknown session storage",
			config: Config{
				Webserver: Webserver{Port: 8080, URL: "http://localhost:8080", Session: Session{Storage: "redis"}},
			},
			wantErr: ErrUnknownSessionStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestConfigValidationDefaults(t *testing.T) {
	cfg := Config{Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"}}
	require.NoError(t, validate(&cfg))

	assert.Equal(t, EngineSQLite, cfg.DB.GormEngine)
	assert.Equal(t, defaultSQLiteDatabase, cfg.DB.Path)
	assert.Equal(t, SessionStorageMemory, cfg.Webserver.Session.Storage)
	assert.Equal(t, defaultShutDownTime, cfg.Webserver.ShutDownTime)
	assert.Equal(t, defaultSessionExpiry, cfg.Webserver.Session.ExpiryTime)
	assert.Equal(t, defaultShortcutKey, cfg.Sidebar.ShortcutKey)
	assert.Equal(t, defaultBrandName, cfg.Brand.Name)
	assert.Equal(t, defaultBrandLogo, cfg.Brand.Logo)
}

func TestDumpConfig(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
		Sidebar: Sidebar{ShortcutKey: "K"},
	}

	tomlStr, err := DumpConfig(&cfg)
	require.NoError(t, err)
	assert.True(t, strings.Contains(tomlStr, "Test"))
	assert.Contains(t, tomlStr, "[Sidebar]")

	jsonStr, err := DumpConfigJSON(&cfg)
	require.NoError(t, err)
	assert.Contains(t, jsonStr, `"Title": "Test"`)
}
