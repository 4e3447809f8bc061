package login

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/open-notebook/open-notebook-web/internal/web/handler"
	"github.com/open-notebook/open-notebook-web/internal/web/handler/handlertest"
	"github.com/open-notebook/open-notebook-web/internal/web/session"
)

func newService(t *testing.T, devMode bool) (*Service, *gorm.DB) {
	t.Helper()

	session.Init(nil)

	db := handlertest.NewDB(t)
	cfg := handlertest.NewConfig()
	cfg.DevMode = devMode

	app, _ := handlertest.NewApp()

	s := &Service{}
	require.NoError(t, s.Init(app, cfg, db))

	return s, db
}

func TestInit_NilArguments(t *testing.T) {
	var s Service
	assert.Error(t, s.Init(nil, nil, nil))
}

func TestAuthenticate(t *testing.T) {
	s, db := newService(t, false)

	handlertest.CreateUser(t, db, "alice", "secret")

	user, err := s.authenticate("alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = s.authenticate("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.authenticate("nobody", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, db.Model(user).Update("active", false).Error)

	_, err = s.authenticate("alice", "secret")
	assert.ErrorIs(t, err, ErrInactiveUser)
}

func TestPost_Success_SetsCookieAndRedirects(t *testing.T) {
	session.Init(nil)

	db := handlertest.NewDB(t)
	app, _ := handlertest.NewApp()

	var s Service
	require.NoError(t, s.Init(app, handlertest.NewConfig(), db))

	handlertest.CreateUser(t, db, "bob", "s3cr3t")

	resp := handlertest.Do(t, app, http.MethodPost, Path+"/", "", url.Values{
		"username": {"bob"},
		"password": {"s3cr3t"},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, handler.HomePath, resp.Header.Get("Location"))

	setCookie := resp.Header.Get("Set-Cookie")
	assert.Contains(t, setCookie, session.CookieName+"=")
	assert.Contains(t, strings.ToLower(setCookie), "secure")
	assert.Contains(t, strings.ToLower(setCookie), "httponly")

	var sessionID string
	for _, cookie := range resp.Cookies() {
		if cookie.Name == session.CookieName {
			sessionID = cookie.Value
		}
	}

	var data session.Data
	require.NoError(t, data.Read(sessionID))
	assert.Equal(t, "bob", data.User.Username)
	assert.False(t, data.PlatformDetected())
}

func TestPost_DevModeDisablesSecure(t *testing.T) {
	session.Init(nil)

	db := handlertest.NewDB(t)
	cfg := handlertest.NewConfig()
	cfg.DevMode = true

	app, _ := handlertest.NewApp()

	var s Service
	require.NoError(t, s.Init(app, cfg, db))

	handlertest.CreateUser(t, db, "carol", "pass")

	resp := handlertest.Do(t, app, http.MethodPost, Path+"/", "", url.Values{
		"username": {"carol"},
		"password": {"pass"},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.NotContains(t, strings.ToLower(resp.Header.Get("Set-Cookie")), "secure")
}

func TestPost_Errors(t *testing.T) {
	session.Init(nil)

	db := handlertest.NewDB(t)
	app, views := handlertest.NewApp()

	var s Service
	require.NoError(t, s.Init(app, handlertest.NewConfig(), db))

	handlertest.CreateUser(t, db, "dave", "right")

	tests := []struct {
		name string
		form url.Values
		want error
	}{
		{"missing password", url.Values{"username": {"dave"}}, ErrInvalidFormData},
		{"wrong password", url.Values{"username": {"dave"}, "password": {"wrong"}}, ErrInvalidCredentials},
		{"unknown user", url.Values{"username": {"erin"}, "password": {"right"}}, ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := handlertest.Do(t, app, http.MethodPost, Path+"/", "", tt.form)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.want.Error(), handlertest.Body(t, resp))
			assert.Empty(t, resp.Header.Get("Set-Cookie"))
			assert.Equal(t, TemplateName, views.Last(t).Name)
		})
	}
}

func TestGet_RendersLogin(t *testing.T) {
	session.Init(nil)

	app, views := handlertest.NewApp()

	var s Service
	require.NoError(t, s.Init(app, handlertest.NewConfig(), handlertest.NewDB(t)))

	resp := handlertest.Do(t, app, http.MethodGet, Path, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, TemplateName, views.Last(t).Name)
	assert.Equal(t, "Open Notebook", views.Last(t).Data["AppTitle"])
}
