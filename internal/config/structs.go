package config

import (
	"time"

	"github.com/open-notebook/open-notebook-web/internal/logger"
)

// DB holds the database configuration settings.
type DB struct {
	GormEngine string // sqlite, mysql or postgres
	Path       string // sqlite database file
	Extras     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
}

// Session settings.
type Session struct {
	ExpiryTime time.Duration
	Storage    string // memory or db
}

// Brand is shown in the sidebar header.
type Brand struct {
	Name string
	Logo string
}

// Sidebar holds the navigation sidebar defaults.
type Sidebar struct {
	DefaultCollapsed bool   // collapse state for users without a stored preference
	ShortcutKey      string // key shown next to the platform modifier in the quick actions hint
}

// Admin is the user seeded into an empty database.
type Admin struct {
	Username string
	Password string
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Brand     Brand
	Sidebar   Sidebar
	Admin     Admin
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic bool    // enable static file browsing (for development purposes only)
	Port         int     // listening port for the webserver
	ShutDownTime int     // wait time for shutdown
	URL          string  // base url for the webserver
	Session      Session // session settings
}
