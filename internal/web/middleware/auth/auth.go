package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	fiberlog "github.com/open-notebook/open-notebook-web/internal/logger/adapter/fiber"
	"github.com/open-notebook/open-notebook-web/internal/web/handler"
	"github.com/open-notebook/open-notebook-web/internal/web/handler/login"
	"github.com/open-notebook/open-notebook-web/internal/web/session"
)

const (
	staticPrefix     = "/static"
	metricsPrefix    = "/metrics"
	checkAlivePrefix = "/checkalive"
	logoutPrefix     = "/logout"
)

// Middleware is a Fiber middleware that checks for user authentication.
func Middleware(c *fiber.Ctx) error {
	var (
		isLoginPage   = IsLoginPage(c)
		isLogoutPage  = IsLogoutPage(c)
		sessDataValid bool
	)

	originalURL := strings.ToLower(c.OriginalURL())
	if strings.HasPrefix(originalURL, staticPrefix) ||
		strings.HasPrefix(originalURL, metricsPrefix) ||
		strings.HasPrefix(originalURL, checkAlivePrefix) {
		return c.Next()
	}

	// Allow logout page without authentication
	if isLogoutPage {
		return c.Next()
	}

	// get session cookie
	loginCookie := c.Cookies(session.CookieName)

	// if no session cookie, redirect to login page
	if loginCookie == "" {
		if isLoginPage {
			return c.Next()
		}

		return c.Redirect(login.Path)
	}

	// check session validity
	sessData := new(session.Data)
	if err := sessData.Read(loginCookie); err != nil {
		// If we're already on the login page, don't redirect (would cause loop)
		if isLoginPage {
			return c.Next()
		}

		return c.Redirect(login.Path)
	}

	// valid data in session
	if sessData.User.ID > 0 {
		sessDataValid = true

		c.Locals(handler.LocalsCurrentUser, sessData.User)
		c.Locals(handler.LocalsSession, sessData)
		c.Locals(handler.LocalsSessionID, loginCookie)
		c.Locals(fiberlog.LocalsUsername, sessData.User.Username)
	}

	if sessDataValid && isLoginPage {
		return c.Redirect(handler.HomePath)
	}

	if !sessDataValid && !isLoginPage {
		return c.Redirect(login.Path)
	}

	return c.Next()
}

// IsLoginPage checks if the current request is for the login page.
func IsLoginPage(c *fiber.Ctx) bool {
	originalURL := strings.ToLower(c.OriginalURL())
	return strings.HasPrefix(originalURL, login.Path)
}

// IsLogoutPage checks if the current request is for the logout page.
func IsLogoutPage(c *fiber.Ctx) bool {
	originalURL := strings.ToLower(c.OriginalURL())
	return strings.HasPrefix(originalURL, logoutPrefix)
}
