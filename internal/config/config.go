// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	// EnvConfigJSON names the environment variable holding a JSON config override.
	EnvConfigJSON = "OPEN_NOTEBOOK_CONFIG_JSON"

	// EngineSQLite is the embedded default database engine.
	EngineSQLite = "sqlite"
	// EngineMySQL selects the gorm mysql driver.
	EngineMySQL = "mysql"
	// EnginePostgres selects the gorm postgres driver.
	EnginePostgres = "postgres"

	// SessionStorageMemory keeps sessions in process memory.
	SessionStorageMemory = "memory"
	// SessionStorageDB keeps sessions in the application database through gorm.
	SessionStorageDB = "db"
	// SessionStorageMySQL keeps sessions in the [DB] mysql server through gofiber/storage.
	SessionStorageMySQL = "mysql"
	// SessionStoragePostgres keeps sessions in the [DB] postgres server through gofiber/storage.
	SessionStoragePostgres = "postgres"

	defaultShutDownTime   = 5
	defaultSessionExpiry  = 24 * time.Hour
	defaultShortcutKey    = "K"
	defaultBrandName      = "Open Notebook"
	defaultBrandLogo      = "/static/logo.svg"
	invalidErrMessage     = "invalid config"
	defaultSQLiteDatabase = "open-notebook.db"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to decode "+EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate checks the settings the web shell cannot start without and fills in defaults.
func validate(c *Config) error {
	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	switch c.DB.GormEngine {
	case "":
		c.DB.GormEngine = EngineSQLite
	case EngineSQLite, EngineMySQL, EnginePostgres:
	default:
		return errors.Wrap(ErrUnknownGormEngine, invalidErrMessage)
	}

	if c.DB.GormEngine == EngineSQLite && c.DB.Path == "" {
		c.DB.Path = defaultSQLiteDatabase
	}

	switch c.Webserver.Session.Storage {
	case "":
		c.Webserver.Session.Storage = SessionStorageMemory
	case SessionStorageMemory, SessionStorageDB, SessionStorageMySQL, SessionStoragePostgres:
	default:
		return errors.Wrap(ErrUnknownSessionStorage, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Webserver.Session.ExpiryTime == 0 {
		c.Webserver.Session.ExpiryTime = defaultSessionExpiry
	}

	if c.Sidebar.ShortcutKey == "" {
		c.Sidebar.ShortcutKey = defaultShortcutKey
	}

	if c.Brand.Name == "" {
		c.Brand.Name = defaultBrandName
	}

	if c.Brand.Logo == "" {
		c.Brand.Logo = defaultBrandLogo
	}

	return nil
}
