// Package logout ends the session of the signed in user.
package logout

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"

	"github.com/open-notebook/open-notebook-web/internal/config"
	"github.com/open-notebook/open-notebook-web/internal/web/handler"
	"github.com/open-notebook/open-notebook-web/internal/web/handler/login"
	"github.com/open-notebook/open-notebook-web/internal/web/session"
)

// Path is the path of the logout action.
const Path = handler.RootPath + "logout"

var logouts = promauto.NewCounter( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "logouts_total",
		Help: "Number of handled logout requests.",
	},
)

// Service is the logout handler service.
type Service struct {
	handler.Service
	cfg *config.Config
}

// Handler is the logout handler.
var Handler = Service{}

// Init initializes the logout handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config) {
	if app == nil || cfg == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg

	// logout route (outside auth middleware protection)
	app.Get(Path, s.Logout)
	app.Post(Path, s.Logout)
}

// Logout handles user logout by clearing the session. Sidebar preferences are kept.
func (s *Service) Logout(c *fiber.Ctx) error {
	logouts.Inc()

	// Get session cookie
	sessionID := c.Cookies(session.CookieName)
	if sessionID != "" {
		// Delete session from store
		if err := session.Delete(sessionID); err != nil {
			log.Error().Err(err).Msg("failed to delete session")
		}
	}

	// Clear the session cookie
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		MaxAge:   -1,
		Secure:   !s.cfg.DevMode,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Redirect(login.Path)
}
