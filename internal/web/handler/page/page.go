// Package page serves the section pages linked from the navigation sidebar.
package page

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/open-notebook/open-notebook-web/internal/config"
	"github.com/open-notebook/open-notebook-web/internal/sidebar"
	"github.com/open-notebook/open-notebook-web/internal/web/handler"
	"github.com/open-notebook/open-notebook-web/internal/web/handler/layout"
	"github.com/open-notebook/open-notebook-web/internal/web/navigation"
)

// TemplateName is the name of the section page template.
const TemplateName = "pages/section"

// Service is the section page handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	db   *gorm.DB
	menu []sidebar.Section
}

// Handler is the section page handler.
var Handler = Service{}

// Init registers a page for every menu entry and redirects "/" to the notebooks.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return nil
	}

	s.cfg = cfg
	s.db = db
	s.menu = sidebar.DefaultMenu()

	for _, item := range sidebar.Items(s.menu) {
		app.Get(item.Href, s.Get)
		app.Get(item.Href+"/*", s.Get)
	}

	app.Get(handler.RootPath, func(c *fiber.Ctx) error {
		return c.Redirect(handler.HomePath)
	})

	return nil
}

// Get renders the page of the menu entry matching the request path.
func (s *Service) Get(c *fiber.Ctx) error {
	currentPath := c.Path()

	item, ok := sidebar.Lookup(s.menu, currentPath)
	if !ok {
		return fiber.ErrNotFound
	}

	nav := navigation.ForMenu(s.menu, currentPath, item.Name)

	return layout.Render(c, s.cfg, s.db, TemplateName, nav, fiber.Map{
		"Item":   item,
		"Detail": c.Params("*"),
	})
}
