// Package sidebar serves the actions behind the navigation sidebar controls.
package sidebar

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/open-notebook/open-notebook-web/internal/config"
	"github.com/open-notebook/open-notebook-web/internal/db/controller/preference"
	sb "github.com/open-notebook/open-notebook-web/internal/sidebar"
	"github.com/open-notebook/open-notebook-web/internal/web/handler"
	"github.com/open-notebook/open-notebook-web/internal/web/handler/layout"
	"github.com/open-notebook/open-notebook-web/internal/web/handler/login"
)

const (
	// Path is the base path of the sidebar actions.
	Path = handler.RootPath + "sidebar"

	// TogglePath flips the collapse state of the current user.
	TogglePath = Path + "/toggle"

	// PlatformPath receives the one-shot platform report of the client.
	PlatformPath = Path + "/platform"

	// ThemePath sets or cycles the theme.
	ThemePath = Path + "/theme"

	// NavigationPath serves the menu as JSON for the command palette.
	NavigationPath = Path + "/navigation.json"

	actionToggle   = "toggle"
	actionPlatform = "platform"
	actionTheme    = "theme"
)

var (
	// ErrInvalidTheme is returned for an unknown theme value.
	ErrInvalidTheme = errors.New("invalid theme")

	actions = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "sidebar_actions_total",
			Help: "Number of sidebar actions, differentiated by action.",
		},
		[]string{"action"},
	)
)

type platformForm struct {
	Platform string `form:"platform" validate:"max=256"`
}

type themeForm struct {
	Theme    string `form:"theme"    validate:"omitempty,oneof=light dark system"`
	Redirect string `form:"redirect"`
}

// NavigationItem is a menu entry of the navigation document.
type NavigationItem struct {
	Name   string  `json:"name"`
	Href   string  `json:"href"`
	Icon   sb.Icon `json:"icon"`
	Active bool    `json:"active"`
}

// NavigationSection is a menu section of the navigation document.
type NavigationSection struct {
	Title string           `json:"title"`
	Items []NavigationItem `json:"items"`
}

// Navigation is the command palette data source.
type Navigation struct {
	Path      string              `json:"path"`
	Collapsed bool                `json:"collapsed"`
	Shortcut  string              `json:"shortcut"`
	Theme     sb.Theme            `json:"theme"`
	Sections  []NavigationSection `json:"sections"`
}

// Service is the sidebar handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the sidebar handler.
var Handler = Service{}

// Init initializes the sidebar handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return nil
	}

	s.cfg = cfg
	s.db = db
	s.validator = validator.New()

	app.Post(TogglePath, s.Toggle)
	app.Post(PlatformPath, s.Platform)
	app.Post(ThemePath, s.Theme)
	app.Get(NavigationPath, s.Navigation)

	return nil
}

// Toggle flips the collapse state and sends the user back to the page they came from.
func (s *Service) Toggle(c *fiber.Ctx) error {
	user, ok := handler.CurrentUser(c)
	if !ok {
		return c.Redirect(login.Path)
	}

	if _, err := preference.ToggleCollapse(s.db, user.ID, layout.Defaults(s.cfg)); err != nil {
		log.Error().Err(err).Uint64("user", user.ID).Msg("failed to toggle sidebar")
		return fiber.ErrInternalServerError
	}

	actions.WithLabelValues(actionToggle).Inc()

	return c.Redirect(handler.SafeRedirect(c.FormValue("redirect"), handler.HomePath))
}

// Platform stores the platform reported by the client. Only the first report of a
// session is kept.
func (s *Service) Platform(c *fiber.Ctx) error {
	data, sessionID, ok := handler.CurrentSession(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	if data.PlatformDetected() {
		return c.SendStatus(fiber.StatusNoContent)
	}

	var in platformForm
	if err := c.BodyParser(&in); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if err := s.validator.Struct(in); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	data.Platform = sb.ClassifyPlatform(in.Platform).String()

	if err := data.Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to store platform in session")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	actions.WithLabelValues(actionPlatform).Inc()

	return c.SendStatus(fiber.StatusNoContent)
}

// Theme stores the theme given in the form, or the next one in the cycle when none is given.
func (s *Service) Theme(c *fiber.Ctx) error {
	user, ok := handler.CurrentUser(c)
	if !ok {
		return c.Redirect(login.Path)
	}

	var in themeForm
	if err := c.BodyParser(&in); err != nil {
		return fiber.ErrBadRequest
	}

	if err := s.validator.Struct(in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, ErrInvalidTheme.Error())
	}

	defaults := layout.Defaults(s.cfg)

	theme := sb.Theme(in.Theme)
	if theme == "" {
		current, err := preference.Get(s.db, user.ID, defaults)
		if err != nil {
			log.Error().Err(err).Uint64("user", user.ID).Msg("failed to load sidebar preference")
			return fiber.ErrInternalServerError
		}

		theme = sb.ParseTheme(current.Theme).Next()
	}

	if _, err := preference.SetTheme(s.db, user.ID, theme, defaults); err != nil {
		log.Error().Err(err).Uint64("user", user.ID).Msg("failed to store theme")
		return fiber.ErrInternalServerError
	}

	actions.WithLabelValues(actionTheme).Inc()

	return c.Redirect(handler.SafeRedirect(in.Redirect, handler.HomePath))
}

// Navigation returns the menu with the active entries for the path query parameter.
func (s *Service) Navigation(c *fiber.Ctx) error {
	view, _ := layout.Sidebar(c, s.cfg, s.db, c.Query("path"))

	out := Navigation{
		Path:      view.CurrentPath,
		Collapsed: view.Collapsed,
		Shortcut:  view.Footer.ShortcutLabel,
		Theme:     view.Footer.Theme.Current,
		Sections:  make([]NavigationSection, 0, len(view.Sections)),
	}

	for _, section := range view.Sections {
		ns := NavigationSection{
			Title: section.Title,
			Items: make([]NavigationItem, 0, len(section.Items)),
		}

		for _, item := range section.Items {
			ns.Items = append(ns.Items, NavigationItem{
				Name:   item.Name,
				Href:   item.Href,
				Icon:   item.Icon,
				Active: item.Active,
			})
		}

		out.Sections = append(out.Sections, ns)
	}

	return c.JSON(out)
}
