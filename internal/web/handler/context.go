package handler

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/open-notebook/open-notebook-web/internal/db/models"
	"github.com/open-notebook/open-notebook-web/internal/web/session"
)

// CurrentUser returns the signed in user put into the request by the auth middleware.
func CurrentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals(LocalsCurrentUser).(models.User)
	if !ok || user.ID == 0 {
		return models.User{}, false
	}

	return user, true
}

// CurrentSession returns the session data and id of the request.
func CurrentSession(c *fiber.Ctx) (*session.Data, string, bool) {
	data, ok := c.Locals(LocalsSession).(*session.Data)
	if !ok || data == nil {
		return nil, "", false
	}

	id, _ := c.Locals(LocalsSessionID).(string)

	return data, id, true
}

// CSRFToken returns the csrf token of the request, empty when csrf protection is off.
func CSRFToken(c *fiber.Ctx) string {
	token, _ := c.Locals(LocalsCSRF).(string)
	return token
}

// SafeRedirect returns target when it is a local absolute path, otherwise fallback.
// Targets carrying control characters are rejected since they end up in the Location header.
func SafeRedirect(target, fallback string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.Contains(target, `\`) {
		return fallback
	}

	if strings.IndexFunc(target, isControl) >= 0 {
		return fallback
	}

	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return fallback
	}

	return target
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}
