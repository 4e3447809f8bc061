package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-notebook/open-notebook-web/internal/db/models"
	fiberlog "github.com/open-notebook/open-notebook-web/internal/logger/adapter/fiber"
	"github.com/open-notebook/open-notebook-web/internal/web/handler"
	"github.com/open-notebook/open-notebook-web/internal/web/handler/login"
	"github.com/open-notebook/open-notebook-web/internal/web/session"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(Middleware)

	ok := func(c *fiber.Ctx) error {
		user, _ := handler.CurrentUser(c)
		username, _ := c.Locals(fiberlog.LocalsUsername).(string)

		return c.SendString(user.Username + "|" + username)
	}

	app.Get("/static/app.css", ok)
	app.Get("/metrics", ok)
	app.Get(login.Path, ok)
	app.Get("/logout", ok)
	app.Get("/notebooks", ok)

	return app
}

func get(t *testing.T, app *fiber.App, target, cookie string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func TestMiddleware_PublicPaths(t *testing.T) {
	session.Init(nil)

	app := newTestApp()

	for _, target := range []string{"/static/app.css", "/metrics", login.Path, "/logout"} {
		resp := get(t, app, target, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode, target)
	}
}

func TestMiddleware_RedirectsWithoutSession(t *testing.T) {
	session.Init(nil)

	app := newTestApp()

	resp := get(t, app, "/notebooks", "")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, login.Path, resp.Header.Get("Location"))

	resp = get(t, app, "/notebooks", "unknown")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, login.Path, resp.Header.Get("Location"))
}

func TestMiddleware_ValidSession(t *testing.T) {
	session.Init(nil)

	data := session.Data{User: models.User{ID: 1, Username: "alice"}}
	require.NoError(t, data.Write("sid", time.Minute))

	app := newTestApp()

	resp := get(t, app, "/notebooks", "sid")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := make([]byte, 64)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, "alice|alice", string(body[:n]))

	resp = get(t, app, login.Path, "sid")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, handler.HomePath, resp.Header.Get("Location"))
}

func TestMiddleware_SessionWithoutUser(t *testing.T) {
	session.Init(nil)

	data := session.Data{Platform: "mac"}
	require.NoError(t, data.Write("anon", time.Minute))

	app := newTestApp()

	resp := get(t, app, "/notebooks", "anon")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, login.Path, resp.Header.Get("Location"))
}
