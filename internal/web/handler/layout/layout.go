// Package layout renders pages inside the base layout with the navigation sidebar.
package layout

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/open-notebook/open-notebook-web/internal/config"
	"github.com/open-notebook/open-notebook-web/internal/db/controller/preference"
	"github.com/open-notebook/open-notebook-web/internal/db/models"
	"github.com/open-notebook/open-notebook-web/internal/sidebar"
	"github.com/open-notebook/open-notebook-web/internal/web/handler"
	"github.com/open-notebook/open-notebook-web/internal/web/navigation"
)

// Defaults are the sidebar preferences of users who never changed them.
func Defaults(cfg *config.Config) preference.Defaults {
	return preference.Defaults{
		Collapsed: cfg.Sidebar.DefaultCollapsed,
		Theme:     sidebar.ThemeSystem,
	}
}

// Sidebar resolves the sidebar of the current request.
func Sidebar(c *fiber.Ctx, cfg *config.Config, db *gorm.DB, currentPath string) (sidebar.View, *models.Preference) {
	defaults := Defaults(cfg)

	pref := &models.Preference{
		Collapsed: defaults.Collapsed,
		Theme:     string(defaults.Theme),
	}

	if user, ok := handler.CurrentUser(c); ok {
		stored, err := preference.Get(db, user.ID, defaults)
		if err != nil {
			log.Error().Err(err).Uint64("user", user.ID).Msg("failed to load sidebar preference")
		} else {
			pref = stored
		}
	}

	platform := sidebar.PlatformMac
	if data, _, ok := handler.CurrentSession(c); ok {
		platform = data.SidebarPlatform()
	}

	view := sidebar.Build(sidebar.DefaultMenu(), sidebar.Input{
		CurrentPath: currentPath,
		State:       preference.State(pref),
		Platform:    platform,
		Theme:       sidebar.ParseTheme(pref.Theme),
		Brand: sidebar.Brand{
			Name:    cfg.Brand.Name,
			LogoURL: cfg.Brand.Logo,
		},
		ShortcutKey: cfg.Sidebar.ShortcutKey,
		CSRFToken:   handler.CSRFToken(c),
	})

	return view, pref
}

// Render renders template inside the base layout. data may be nil.
func Render(c *fiber.Ctx, cfg *config.Config, db *gorm.DB, template string, nav *navigation.Context, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}

	view, pref := Sidebar(c, cfg, db, nav.CurrentPath)
	nav.WithSidebar(view)

	platformPending := true
	if sess, _, ok := handler.CurrentSession(c); ok {
		platformPending = !sess.PlatformDetected()
	}

	user, _ := handler.CurrentUser(c)

	data["Navigation"] = nav
	data["Sidebar"] = nav.Sidebar
	data["User"] = user
	data["UserName"] = user.Name()
	data["AppTitle"] = cfg.Title
	data["Theme"] = sidebar.ParseTheme(pref.Theme)
	data["PlatformPending"] = platformPending
	data["ShortcutKey"] = view.Footer.ShortcutKey
	data["CSRF"] = handler.CSRFToken(c)

	return c.Render(template, data, handler.BaseLayout)
}
