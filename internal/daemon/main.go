// Package daemon wires configuration, database, sessions and the web service together.
package daemon

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/open-notebook/open-notebook-web/internal/config"
	"github.com/open-notebook/open-notebook-web/internal/db"
	"github.com/open-notebook/open-notebook-web/internal/db/dsn"
	"github.com/open-notebook/open-notebook-web/internal/web"
	"github.com/open-notebook/open-notebook-web/internal/web/session"
)

const (
	sessionGCInterval = 10 * time.Minute
	sessionTable      = "sessions"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
	sessions   *session.DBStorage
}

// Start runs the web service until SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if d.sessions != nil {
		go d.collectSessions(ctx)
	}

	go func() {
		addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)
		log.Info().Str("addr", addr).Msg("starting web service")

		if err := d.webService.Start(addr); err != nil {
			log.Error().Err(err).Msg("web service stopped")
		}
	}()

	d.webService.WaitShutdown()

	return nil
}

func (d *Daemon) collectSessions(ctx context.Context) {
	ticker := time.NewTicker(sessionGCInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := d.sessions.GC(); err != nil {
				log.Error().Err(err).Msg("failed to remove expired sessions")
			}
		}
	}
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	gormDB, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(gormDB); err != nil {
		return nil, err
	}

	if err = seed(cfg, gormDB); err != nil {
		return nil, err
	}

	d := &Daemon{cfg: cfg}

	storage, err := sessionStorage(cfg, gormDB)
	if err != nil {
		return nil, err
	}

	if dbStorage, ok := storage.(*session.DBStorage); ok {
		d.sessions = dbStorage
	}

	session.Init(storage)

	d.webService = web.New(cfg, gormDB)

	return d, nil
}

// sessionStorage returns the configured session backend, nil meaning process memory.
func sessionStorage(cfg *config.Config, gormDB *gorm.DB) (fiber.Storage, error) {
	switch cfg.Webserver.Session.Storage {
	case config.SessionStorageMemory, "":
		return nil, nil
	case config.SessionStorageDB:
		return session.NewDBStorage(gormDB), nil
	case config.SessionStorageMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         sessionTable + "_kv",
			GCInterval:    sessionGCInterval,
		}), nil
	case config.SessionStoragePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.CreatePostgres(cfg),
			Table:         sessionTable + "_kv",
			GCInterval:    sessionGCInterval,
		}), nil
	default:
		return nil, config.ErrUnknownSessionStorage
	}
}
